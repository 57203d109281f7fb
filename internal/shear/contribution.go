package shear

import (
	"github.com/wilterwhite/ingeo-structures-sub000/internal/member"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

// BeamColumnContribution computes the concrete and steel contributions
// using the beam/column formula family.
//
//	Vc = 0.17 λ √f'c bw d        (NSCP 422.5.5.1)
//	Vs = Av fyt d / s ≤ 0.66 √f'c bw d   (NSCP 422.5.10, 422.5.1.2)
//
// Materials must already be passed through LimitShearMaterials. Results
// in kN. zeroVc forces Vc to exactly zero (cyclic degradation rule).
func BeamColumnContribution(sec Section, reinf TransverseReinforcement, mats nscp.LimitedMaterials, zeroVc bool) ContributionResult {
	r := ContributionResult{}

	bw := sec.Thickness
	d := sec.D()
	if bw <= 0 || d <= 0 {
		return r
	}

	if !zeroVc {
		r.Vc = nscp.VcBeamColumnCoeff * mats.Lambda * mats.SqrtFc * bw * d / 1000
	} else {
		r.VcZeroed = true
	}

	r.VsCap = nscp.VsBeamColumnMaxCoeff * mats.SqrtFc * bw * d / 1000
	if reinf.Spacing > 0 && reinf.Area > 0 {
		fyt := mats.Fyt
		if reinf.Fyt > 0 && reinf.Fyt < fyt {
			fyt = reinf.Fyt
		}
		r.Vs = reinf.Area * fyt * d / reinf.Spacing / 1000
		if r.Vs > r.VsCap {
			r.Vs = r.VsCap
			r.VsLimited = true
		}
	}

	return r
}

// WallContribution computes the concrete and steel contributions using
// the wall formula family.
//
//	Vc = αc λ √f'c Acv           (NSCP 418.10.4.1)
//	Vs = Acv ρt fyt
//
// αc depends on the hw/lw ratio: the squat value at low ratios, the
// slender value at high ratios, linearly interpolated between.
func WallContribution(sec Section, reinf TransverseReinforcement, mats nscp.LimitedMaterials, zeroVc bool) ContributionResult {
	r := ContributionResult{}

	acv := sec.ShearArea()
	if acv <= 0 {
		return r
	}

	hwOverLw := 0.0
	if sec.Length > 0 {
		hwOverLw = sec.Height / sec.Length
	}
	r.AlphaC = nscp.AlphaC(hwOverLw)

	if !zeroVc {
		r.Vc = r.AlphaC * mats.Lambda * mats.SqrtFc * acv / 1000
	} else {
		r.VcZeroed = true
	}

	fyt := mats.Fyt
	if reinf.Fyt > 0 && reinf.Fyt < fyt {
		fyt = reinf.Fyt
	}
	r.Vs = acv * reinf.HorizontalRatio(sec.Thickness) * fyt / 1000

	return r
}

// Contribution dispatches to the formula family selected by the
// classification.
func Contribution(class member.Classification, sec Section, reinf TransverseReinforcement, mats nscp.LimitedMaterials, zeroVc bool) ContributionResult {
	if class.Family == member.FamilyBeamColumn {
		return BeamColumnContribution(sec, reinf, mats, zeroVc)
	}
	return WallContribution(sec, reinf, mats, zeroVc)
}
