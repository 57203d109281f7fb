package shear

import "github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"

// ZeroConcreteCondition decides whether cyclic degradation eliminates
// the concrete contribution entirely. When it holds, Vc is taken as
// exactly zero, not merely reduced.
//
// Both parts must hold (NSCP 2015 Section 418.6.5.2):
//
//	(a) the capacity-design (earthquake-induced) shear is at least half
//	    the maximum factored shear over the member; trivially satisfied
//	    when the factored shear is not positive
//	(b) the factored axial compression is below Ag f'c / 20, with the
//	    comparison strict - equality keeps the concrete contribution
//
// ve and vuMax in kN, pu in kN compression positive, ag in mm², fc in
// MPa (the limited value).
func ZeroConcreteCondition(ve, vuMax, pu, ag, fc float64) bool {
	seismicDominates := vuMax <= 0 || ve >= nscp.ZeroVcShearFrac*vuMax

	axialThreshold := ag * fc / nscp.ZeroVcAxialDivisor / 1000 // kN
	lowAxial := pu < axialThreshold

	return seismicDominates && lowAxial
}
