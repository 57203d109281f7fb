package shear

import (
	"math"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

// AmplificationResult is the table-driven demand amplification for
// members whose demand is not derived from flexural overstrength.
type AmplificationResult struct {
	OmegaV      float64 // geometry factor Ωv
	OmegaHeight float64 // building height factor ωh
	Factor      float64 // combined multiplier actually applied
	Demand      float64 // amplified demand (kN)

	// SystemOverstrength is set when the single Ω0 alternative
	// replaced the tabulated product
	SystemOverstrength bool
}

// AmplifyDemand applies the two table-driven multipliers to the analysis
// shear (NSCP 2015 Section 418.10.3 basis). hwOverLw is measured from
// the critical section; buildingHeight in meters.
//
// Callers gate usage by classification: capacity-designed members and
// coupling beams never route through here.
func AmplifyDemand(vu, hwOverLw, buildingHeight float64, useSystemOverstrength bool, overstrengthFactor float64) AmplificationResult {
	r := AmplificationResult{
		OmegaV:      OmegaV(hwOverLw),
		OmegaHeight: OmegaHeight(hwOverLw, buildingHeight),
	}

	if useSystemOverstrength && overstrengthFactor >= 1.0 {
		r.SystemOverstrength = true
		r.OmegaHeight = 1.0
		r.Factor = overstrengthFactor
	} else {
		r.Factor = r.OmegaV * r.OmegaHeight
	}
	if r.Factor < 1.0 {
		r.Factor = 1.0
	}

	r.Demand = r.Factor * vu
	return r
}

// OmegaV interpolates the geometry amplification factor: 1.0 at
// hw/lw ≤ 1.0, rising linearly to its maximum at hw/lw ≥ 2.0.
func OmegaV(hwOverLw float64) float64 {
	if hwOverLw <= nscp.OmegaVRatioMin {
		return 1.0
	}
	if hwOverLw >= nscp.OmegaVRatioMax {
		return nscp.OmegaVMax
	}
	t := (hwOverLw - nscp.OmegaVRatioMin) / (nscp.OmegaVRatioMax - nscp.OmegaVRatioMin)
	return 1.0 + t*(nscp.OmegaVMax-1.0)
}

// OmegaHeight is the building-height amplification factor: 1.0 up to
// the slender-wall ratio, above it a cube-root law of the total
// building height (m), floored at 1.0. The coefficient is a code-table
// constant, injected rather than derived.
func OmegaHeight(hwOverLw, buildingHeight float64) float64 {
	if hwOverLw <= nscp.OmegaVRatioMax || buildingHeight <= 0 {
		return 1.0
	}
	w := nscp.OmegaHeightCoeff * math.Cbrt(buildingHeight)
	if w < 1.0 {
		return 1.0
	}
	return w
}
