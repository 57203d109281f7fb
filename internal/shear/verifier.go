package shear

import (
	"math"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/member"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

// AssembleCapacity builds the nominal and design shear strength for one
// direction from the formula-family contributions.
//
// The wall family clamps Vn = Vc+Vs to a material ceiling that is
// strictly tighter for a segment verified inside a connected group
// (0.66 √f'c Acv) than for an individually verified segment
// (0.83 √f'c Acv). The beam/column family carries its ceiling on Vs
// alone. φ is lower for the highest-ductility category.
func AssembleCapacity(class member.Classification, sec Section, reinf TransverseReinforcement, mats nscp.LimitedMaterials, zeroVc, inGroup bool, category nscp.SeismicCategory) CapacityResult {
	r := CapacityResult{
		ContributionResult: Contribution(class, sec, reinf, mats, zeroVc),
		Phi:                nscp.PhiShearFor(category),
		Notes:              mats.Notes,
	}

	r.Vn = r.Vc + r.Vs

	if class.Family == member.FamilyWall {
		coeff := nscp.VnWallIndividualCoeff
		if inGroup {
			coeff = nscp.VnWallGroupCoeff
		}
		r.VnCeiling = coeff * mats.SqrtFc * sec.ShearArea() / 1000
		if r.Vn > r.VnCeiling {
			r.Vn = r.VnCeiling
			r.VnLimited = true
		}
	}

	r.PhiVn = r.Phi * r.Vn
	return r
}

// VerifyDirection computes the demand-to-capacity ratio for a single
// direction. A zero design strength yields an explicit undefined marker
// rather than a division fault; zero demand against positive strength
// passes with DCR = 0.
func VerifyDirection(capacity CapacityResult, demand float64) DirectionalVerification {
	v := DirectionalVerification{
		Demand:   demand,
		Capacity: capacity,
	}

	if capacity.PhiVn <= 0 {
		if demand == 0 {
			// No demand on a member with no strength is vacuously fine,
			// but the ratio stays undefined
			v.Passes = true
		}
		return v
	}

	v.DCR = abs(demand) / capacity.PhiVn
	v.DCRDefined = true
	v.Passes = v.DCR <= 1.0
	return v
}

// Combine merges two orthogonal directional verifications by
// root-sum-square. The merge is commutative and reduces to the single
// direction's ratio when the orthogonal demand is zero. The combined
// ratio is undefined when either loaded direction's ratio is undefined.
func Combine(d1, d2 DirectionalVerification) CombinedVerification {
	c := CombinedVerification{Dir1: d1, Dir2: d2}

	r1, def1 := directionRatio(d1)
	r2, def2 := directionRatio(d2)
	if !def1 || !def2 {
		c.Passes = d1.Passes && d2.Passes
		return c
	}

	c.DCR = math.Sqrt(r1*r1 + r2*r2)
	c.DCRDefined = true
	c.Passes = c.DCR <= 1.0
	return c
}

// directionRatio treats an unloaded direction as contributing zero,
// defined, regardless of its capacity.
func directionRatio(d DirectionalVerification) (float64, bool) {
	if d.Demand == 0 {
		return 0, true
	}
	return d.DCR, d.DCRDefined
}
