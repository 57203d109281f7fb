package nscp

// NSCP 2015 Shear Design Coefficients
//
// All coefficients multiply √f'c (MPa) and areas in mm², producing
// strengths in N. The package-level helpers convert to kN.

const (
	// Beam/column concrete contribution coefficient
	// Section 422.5.5.1 - Vc = 0.17 λ √f'c bw d
	VcBeamColumnCoeff = 0.17

	// Beam/column steel contribution ceiling
	// Section 422.5.1.2 - Vs ≤ 0.66 √f'c bw d
	VsBeamColumnMaxCoeff = 0.66

	// Wall concrete contribution coefficient αc
	// Section 418.10.4.1 - 0.25 for squat walls, 0.17 for slender,
	// linear interpolation between the hw/lw thresholds
	AlphaCSquat        = 0.25
	AlphaCSlender      = 0.17
	AlphaCSquatLimit   = 1.5 // hw/lw at or below which αc = AlphaCSquat
	AlphaCSlenderLimit = 2.0 // hw/lw at or above which αc = AlphaCSlender

	// Ceilings on wall nominal shear strength (Section 418.10.4.4)
	// An individual segment may carry up to 0.83 √f'c Acv; segments
	// sharing a common lateral force are held to 0.66 √f'c Acv in
	// aggregate, so a grouped segment is held to the tighter value.
	VnWallIndividualCoeff = 0.83
	VnWallGroupCoeff      = 0.66

	// Axial threshold of the zero-concrete-contribution rule
	// Section 418.6.5.2 - Vc = 0 when the seismic shear is at least
	// half the maximum shear AND Pu < Ag f'c / 20
	ZeroVcAxialDivisor = 20.0
	ZeroVcShearFrac    = 0.5

	// Effective depth of a wall treated with the beam/column family
	// when the caller supplies none (Section 411.5.4.14 convention)
	EffectiveDepthWallFactor = 0.8
)

// Demand amplification for members not designed by capacity
// (Section 418.10.3 basis; the height coefficient is a code-table
// constant, injected rather than derived).
const (
	// Geometry factor Ωv: 1.0 at hw/lw ≤ OmegaVRatioMin, linear to
	// OmegaVMax at hw/lw ≥ OmegaVRatioMax
	OmegaVMax      = 1.5
	OmegaVRatioMin = 1.0
	OmegaVRatioMax = 2.0

	// Height factor ωh applies only above OmegaVRatioMax and grows as
	// the cube root of total building height (m), floored at 1.0
	OmegaHeightCoeff = 0.5
)

// AlphaC returns the wall concrete contribution coefficient for a given
// height-to-length ratio. Monotone non-increasing, clamped to
// [AlphaCSlender, AlphaCSquat].
// NSCP 2015 Section 418.10.4.1
func AlphaC(hwOverLw float64) float64 {
	if hwOverLw <= AlphaCSquatLimit {
		return AlphaCSquat
	}
	if hwOverLw >= AlphaCSlenderLimit {
		return AlphaCSlender
	}
	t := (hwOverLw - AlphaCSquatLimit) / (AlphaCSlenderLimit - AlphaCSquatLimit)
	return AlphaCSquat + t*(AlphaCSlender-AlphaCSquat)
}
