package nscp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitShearMaterialsWithinCeilings(t *testing.T) {
	m := LimitShearMaterials(28, 420, 1.0)

	assert.Equal(t, 28.0, m.Fc)
	assert.Equal(t, 420.0, m.Fyt)
	assert.Equal(t, 1.0, m.Lambda)
	assert.InDelta(t, 5.2915, m.SqrtFc, 1e-3)
	assert.Empty(t, m.Notes)
}

func TestLimitShearMaterialsClampsFc(t *testing.T) {
	m := LimitShearMaterials(90, 420, 1.0)

	assert.InDelta(t, FcShearMax, m.Fc, 1e-9)
	assert.InDelta(t, SqrtFcMax, m.SqrtFc, 1e-9)
	require.Len(t, m.Notes, 1)
	assert.Equal(t, "f'c", m.Notes[0].Field)
	assert.Equal(t, 90.0, m.Notes[0].Input)
}

func TestLimitShearMaterialsLightweightCeiling(t *testing.T) {
	m := LimitShearMaterials(50, 420, LambdaAllLightweight)

	// Lightweight concrete carries a lower f'c ceiling than 8.3²
	assert.Equal(t, FcLightweightMax, m.Fc)
	require.Len(t, m.Notes, 1)
}

func TestLimitShearMaterialsClampsFyt(t *testing.T) {
	m := LimitShearMaterials(28, 500, 1.0)

	assert.Equal(t, FytShearMax, m.Fyt)
	require.Len(t, m.Notes, 1)
	assert.Equal(t, "fyt", m.Notes[0].Field)
}

func TestLimitShearMaterialsInvalidLambda(t *testing.T) {
	m := LimitShearMaterials(28, 420, -0.5)
	assert.Equal(t, LambdaNormalWeight, m.Lambda)

	m = LimitShearMaterials(28, 420, 1.4)
	assert.Equal(t, LambdaNormalWeight, m.Lambda)
}

func TestLimitConfinementYield(t *testing.T) {
	fyt, note := LimitConfinementYield(420)
	assert.Equal(t, 420.0, fyt)
	assert.Nil(t, note)

	// Confinement use allows a higher ceiling than shear use
	fyt, note = LimitConfinementYield(550)
	assert.Equal(t, 550.0, fyt)
	assert.Nil(t, note)

	fyt, note = LimitConfinementYield(800)
	assert.Equal(t, FytConfinementMax, fyt)
	require.NotNil(t, note)
	assert.Equal(t, 800.0, note.Input)
}

func TestPhiShearFor(t *testing.T) {
	assert.Equal(t, PhiShearSeismic, PhiShearFor(CategorySpecial))
	assert.Equal(t, PhiShear, PhiShearFor(CategoryIntermediate))
	assert.Equal(t, PhiShear, PhiShearFor(CategoryOrdinary))
}

func TestParseSeismicCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    SeismicCategory
		wantErr bool
	}{
		{"SPECIAL", CategorySpecial, false},
		{"special", CategorySpecial, false},
		{"INTERMEDIATE", CategoryIntermediate, false},
		{"ORDINARY", CategoryOrdinary, false},
		{"", CategorySpecial, false},
		{"bogus", CategorySpecial, true},
	}
	for _, tc := range tests {
		got, err := ParseSeismicCategory(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
		} else {
			assert.NoError(t, err, tc.in)
		}
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestAlphaCPlateaus(t *testing.T) {
	assert.Equal(t, AlphaCSquat, AlphaC(0.5))
	assert.Equal(t, AlphaCSquat, AlphaC(1.0))
	// The squat plateau holds exactly at its limit ratio
	assert.Equal(t, AlphaCSquat, AlphaC(1.5))
	assert.Equal(t, AlphaCSlender, AlphaC(2.0))
	assert.Equal(t, AlphaCSlender, AlphaC(10.0))
}

func TestAlphaCInterpolation(t *testing.T) {
	assert.InDelta(t, 0.21, AlphaC(1.75), 1e-9)
}

func TestAlphaCMonotoneNonIncreasing(t *testing.T) {
	prev := AlphaC(0)
	for r := 0.05; r <= 4.0; r += 0.05 {
		cur := AlphaC(r)
		assert.LessOrEqual(t, cur, prev, "αc must not increase at hw/lw=%.2f", r)
		assert.GreaterOrEqual(t, cur, AlphaCSlender)
		assert.LessOrEqual(t, cur, AlphaCSquat)
		prev = cur
	}
}

func TestGoverningShear(t *testing.T) {
	loads := LoadForces{
		Dead:       MemberForces{Shear: 40, Axial: 800},
		Live:       MemberForces{Shear: 15, Axial: 250},
		Earthquake: MemberForces{Shear: 310, Axial: 60},
	}

	governing, combo := GoverningShear(loads, LoadCombinations)

	// 1.2D + 1.0E + 1.0L governs: 48 + 310 + 15 = 373 kN
	assert.Equal(t, "5", combo.ID)
	assert.InDelta(t, 373.0, governing.Shear, 1e-9)
	assert.InDelta(t, 1270.0, governing.Axial, 1e-9)
}

func TestGoverningShearNegativeDominates(t *testing.T) {
	loads := LoadForces{
		Dead:       MemberForces{Shear: 10},
		Earthquake: MemberForces{Shear: -400},
	}

	governing, combo := GoverningShear(loads, LoadCombinations)

	// 0.9D + 1.0E gives -391; combination 5 gives -388
	assert.Equal(t, "7", combo.ID)
	assert.InDelta(t, -391.0, governing.Shear, 1e-9)
}
