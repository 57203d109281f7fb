// Package shear implements the seismic shear strength verification of
// reinforced concrete lateral members (walls, wall piers, columns) under
// the capacity design provisions of NSCP 2015 Section 418.
package shear

import (
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

// Section is the geometry and materials of one member for a single
// verification call. Length is measured along the analysis direction,
// thickness orthogonal to it. Immutable once constructed.
type Section struct {
	// Geometry (mm)
	Length    float64 // lw - dimension along the analysis direction
	Thickness float64 // t - orthogonal web thickness
	Height    float64 // hw - clear height

	// Materials (MPa)
	Fc float64 // f'c - concrete compressive strength
	Fy float64 // fy - longitudinal steel yield strength

	// Lightweight concrete modification factor (1.0 = normal weight)
	Lambda float64

	// EffectiveDepth overrides the default 0.8·lw used by the
	// beam/column formula family when positive (mm)
	EffectiveDepth float64
}

// ShearArea returns the gross in-plane shear area Acv (mm²).
func (s Section) ShearArea() float64 {
	if s.Length <= 0 || s.Thickness <= 0 {
		return 0
	}
	return s.Length * s.Thickness
}

// GrossArea returns the gross cross-sectional area Ag (mm²).
func (s Section) GrossArea() float64 {
	return s.ShearArea()
}

// D returns the effective depth used by the beam/column family (mm).
func (s Section) D() float64 {
	if s.EffectiveDepth > 0 {
		return s.EffectiveDepth
	}
	return nscp.EffectiveDepthWallFactor * s.Length
}

// TransverseReinforcement describes the shear reinforcement supplied by
// the caller; nothing here derives bar layouts.
type TransverseReinforcement struct {
	Area    float64 // Av - area crossing one shear plane (mm²)
	Spacing float64 // s - spacing along the member axis (mm)
	Fyt     float64 // yield strength (MPa)
	// RhoH is the distributed horizontal reinforcement ratio used by
	// the wall family; derived from Area/(Spacing·t) when zero
	RhoH float64
}

// HorizontalRatio returns ρt for the wall formula family.
func (t TransverseReinforcement) HorizontalRatio(thickness float64) float64 {
	if t.RhoH > 0 {
		return t.RhoH
	}
	if t.Spacing <= 0 || thickness <= 0 {
		return 0
	}
	return t.Area / (t.Spacing * thickness)
}

// DemandForces is one load combination's factored demand on the member.
// Axial is signed with compression positive.
type DemandForces struct {
	Shear float64 // Vu - factored shear (kN)
	Axial float64 // Pu - factored axial force (kN, compression positive)

	// Probable flexural overstrength at the member ends, from the
	// flexural capacity collaborator; zero when unavailable (kN·m)
	MprTop    float64
	MprBottom float64
	ClearSpan float64 // ln - clear span between the moment ends (mm)
}

// HasOverstrength reports whether end-moment data for capacity design
// was supplied.
func (d DemandForces) HasOverstrength() bool {
	return d.MprTop != 0 || d.MprBottom != 0
}

// ContributionResult is one formula family's concrete and steel
// contribution for a single direction.
type ContributionResult struct {
	Vc float64 // concrete contribution (kN)
	Vs float64 // steel contribution (kN)

	// VsLimited is set when the raw steel contribution exceeded its
	// √f'c ceiling and was returned at the cap exactly
	VsLimited bool
	VsCap     float64 // the ceiling that applied (kN)

	// VcZeroed is set when the zero-concrete-contribution rule forced
	// Vc to exactly zero
	VcZeroed bool

	// AlphaC is the wall family coefficient actually used (0 for the
	// beam/column family)
	AlphaC float64
}

// CapacityResult is the assembled nominal and design strength for one
// direction.
type CapacityResult struct {
	ContributionResult

	Vn    float64 // nominal strength after ceiling clamp (kN)
	Phi   float64 // strength reduction factor applied
	PhiVn float64 // design strength (kN)

	// VnLimited is set when Vc+Vs exceeded the material ceiling and Vn
	// was clamped to it
	VnLimited bool
	VnCeiling float64 // the ceiling compared against (kN)

	Notes []nscp.MaterialNote
}

// DirectionalVerification pairs a demand with a capacity for one
// analysis direction.
type DirectionalVerification struct {
	Demand   float64 // Vu after routing (kN)
	Capacity CapacityResult

	// DCR is demand over design strength; undefined when the design
	// strength is zero
	DCR        float64
	DCRDefined bool
	Passes     bool

	// Demand routing markers
	CapacityDesigned    bool    // demand came from end-moment overstrength
	CapacityDesignFlag  string  // reason capacity design was not applied, if any
	Amplified           bool    // table-driven amplification was applied
	AmplificationFactor float64 // combined Ωv·ωh actually applied
}

// CombinedVerification is the root-sum-square merge of two orthogonal
// directional verifications.
type CombinedVerification struct {
	Dir1 DirectionalVerification
	Dir2 DirectionalVerification

	DCR        float64
	DCRDefined bool
	Passes     bool
}
