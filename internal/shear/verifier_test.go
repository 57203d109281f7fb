package shear

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/member"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

func wallClass() member.Classification {
	return member.Classification{Category: member.CategoryWallSquat, Family: member.FamilyWall}
}

func TestAssembleCapacityWallIndividual(t *testing.T) {
	sec := Section{Length: 3000, Thickness: 250, Height: 3000, Fc: 25}
	mats := nscp.LimitShearMaterials(25, 420, 1.0)
	reinf := TransverseReinforcement{RhoH: 0.005, Fyt: 420}

	r := AssembleCapacity(wallClass(), sec, reinf, mats, false, false, nscp.CategorySpecial)

	// Vc = 0.25·5·750000/1000, Vs = 750000·0.005·420/1000
	assert.InDelta(t, 937.5, r.Vc, 1e-9)
	assert.InDelta(t, 1575.0, r.Vs, 1e-9)
	// 0.83·5·750000/1000 = 3112.5 > Vc+Vs: no clamp
	assert.InDelta(t, 3112.5, r.VnCeiling, 1e-9)
	assert.False(t, r.VnLimited)
	assert.InDelta(t, 2512.5, r.Vn, 1e-9)
	assert.Equal(t, nscp.PhiShearSeismic, r.Phi)
	assert.InDelta(t, 0.60*2512.5, r.PhiVn, 1e-9)
}

func TestAssembleCapacityGroupCeilingTighter(t *testing.T) {
	sec := Section{Length: 3000, Thickness: 250, Height: 3000, Fc: 25}
	mats := nscp.LimitShearMaterials(25, 420, 1.0)
	reinf := TransverseReinforcement{RhoH: 0.005, Fyt: 420}

	r := AssembleCapacity(wallClass(), sec, reinf, mats, false, true, nscp.CategorySpecial)

	// 0.66·5·750000/1000 = 2475 < Vc+Vs = 2512.5: clamped
	assert.InDelta(t, 2475.0, r.VnCeiling, 1e-9)
	assert.True(t, r.VnLimited)
	assert.InDelta(t, 2475.0, r.Vn, 1e-9)
}

func TestAssembleCapacityPhiByCategory(t *testing.T) {
	sec := Section{Length: 3000, Thickness: 250, Height: 3000, Fc: 25}
	mats := nscp.LimitShearMaterials(25, 420, 1.0)

	special := AssembleCapacity(wallClass(), sec, TransverseReinforcement{}, mats, false, false, nscp.CategorySpecial)
	ordinary := AssembleCapacity(wallClass(), sec, TransverseReinforcement{}, mats, false, false, nscp.CategoryOrdinary)

	assert.Equal(t, 0.60, special.Phi)
	assert.Equal(t, 0.75, ordinary.Phi)
	assert.Equal(t, special.Vn, ordinary.Vn, "φ changes design strength only")
}

func TestAssembleCapacityBeamColumnNoVnCeiling(t *testing.T) {
	class := member.Classification{Category: member.CategoryColumn, Family: member.FamilyBeamColumn}
	sec := Section{Length: 600, Thickness: 300, Height: 3000, Fc: 25}
	mats := nscp.LimitShearMaterials(25, 420, 1.0)
	reinf := TransverseReinforcement{Area: 157, Spacing: 150, Fyt: 420}

	r := AssembleCapacity(class, sec, reinf, mats, false, false, nscp.CategorySpecial)

	assert.False(t, r.VnLimited)
	assert.Zero(t, r.VnCeiling, "beam/column family carries its ceiling on Vs")
	assert.InDelta(t, 122.4+211.008, r.Vn, 1e-9)
}

func TestVerifyDirection(t *testing.T) {
	cap := CapacityResult{PhiVn: 500}

	v := VerifyDirection(cap, 400)
	assert.True(t, v.DCRDefined)
	assert.InDelta(t, 0.8, v.DCR, 1e-9)
	assert.True(t, v.Passes)

	v = VerifyDirection(cap, -400)
	assert.InDelta(t, 0.8, v.DCR, 1e-9, "demand sign does not matter")

	v = VerifyDirection(cap, 600)
	assert.False(t, v.Passes)
}

func TestVerifyDirectionZeroDemandPasses(t *testing.T) {
	v := VerifyDirection(CapacityResult{PhiVn: 500}, 0)

	assert.True(t, v.DCRDefined)
	assert.Zero(t, v.DCR)
	assert.True(t, v.Passes)
}

func TestVerifyDirectionZeroStrengthUndefined(t *testing.T) {
	v := VerifyDirection(CapacityResult{}, 100)
	assert.False(t, v.DCRDefined)
	assert.False(t, v.Passes)

	v = VerifyDirection(CapacityResult{}, 0)
	assert.False(t, v.DCRDefined)
	assert.True(t, v.Passes, "no demand on no strength is vacuously fine")
}

func TestCombineSRSS(t *testing.T) {
	d1 := VerifyDirection(CapacityResult{PhiVn: 1000}, 300)
	d2 := VerifyDirection(CapacityResult{PhiVn: 1000}, 400)

	c := Combine(d1, d2)

	assert.True(t, c.DCRDefined)
	assert.InDelta(t, 0.5, c.DCR, 1e-9)
	assert.True(t, c.Passes)
}

func TestCombineCommutative(t *testing.T) {
	d1 := VerifyDirection(CapacityResult{PhiVn: 800}, 300)
	d2 := VerifyDirection(CapacityResult{PhiVn: 600}, 450)

	a := Combine(d1, d2)
	b := Combine(d2, d1)

	assert.Equal(t, a.DCR, b.DCR)
	assert.Equal(t, a.Passes, b.Passes)
}

func TestCombineReducesToSingleDirection(t *testing.T) {
	loaded := VerifyDirection(CapacityResult{PhiVn: 500}, 350)
	unloaded := VerifyDirection(CapacityResult{}, 0)

	c := Combine(loaded, unloaded)

	assert.True(t, c.DCRDefined)
	assert.InDelta(t, loaded.DCR, c.DCR, 1e-9)
}

func TestCombineUndefinedPropagates(t *testing.T) {
	loaded := VerifyDirection(CapacityResult{PhiVn: 500}, 350)
	broken := VerifyDirection(CapacityResult{}, 100)

	c := Combine(loaded, broken)

	assert.False(t, c.DCRDefined)
	assert.False(t, c.Passes)
}
