package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/member"
)

func slenderWall() Member {
	return Member{
		Name:          "W-1",
		Length:        3000,
		Thickness:     250,
		Height:        7500, // hw/lw = 2.5
		Fc:            28,
		Fy:            420,
		Reinforcement: Reinforcement{RhoH: 0.0025, Fyt: 420},
	}
}

func TestVerifyMemberAmplifiedWall(t *testing.T) {
	m := slenderWall()
	m.Combinations = []Combination{
		{Name: "1.2D+1.0E", Shear1: 500, Axial: 2000},
	}

	res := VerifyMember(m, DefaultOptions())

	assert.Equal(t, member.CategoryWall, res.Class1.Category)
	require.Len(t, res.Results, 1)

	d1 := res.Results[0].Dir1
	assert.True(t, d1.Amplified)
	assert.InDelta(t, 1.5, d1.AmplificationFactor, 1e-9)
	assert.InDelta(t, 750.0, d1.Demand, 1e-9)
	assert.False(t, d1.CapacityDesigned)

	// Vc = 0.17·√28·750000/1000 ≈ 674.67, Vs = 787.5, φ = 0.60
	assert.InDelta(t, 674.666, d1.Capacity.Vc, 1e-2)
	assert.InDelta(t, 787.5, d1.Capacity.Vs, 1e-9)
	assert.False(t, d1.Capacity.VcZeroed, "axial above Ag·f'c/20 keeps the concrete contribution")
	assert.InDelta(t, 877.30, d1.Capacity.PhiVn, 1e-1)

	assert.InDelta(t, 0.855, res.Results[0].Combined.DCR, 1e-3)
	assert.True(t, res.Passes)
	assert.Equal(t, 0, res.Governing)
}

func TestVerifyMemberCapacityDesignRouting(t *testing.T) {
	m := slenderWall()
	m.Combinations = []Combination{
		{Name: "E", Shear1: 200, MprTop1: 410, MprBottom1: 380, ClearSpan: 2400},
	}

	res := VerifyMember(m, DefaultOptions())
	require.Len(t, res.Results, 1)

	d1 := res.Results[0].Dir1
	assert.True(t, d1.CapacityDesigned)
	assert.False(t, d1.Amplified, "capacity-designed demand is never amplified")
	assert.InDelta(t, 329.1667, d1.Demand, 1e-4)

	// Ve dominates the analysis shear and the axial load is zero, so
	// the concrete contribution drops out entirely
	assert.True(t, d1.Capacity.VcZeroed)
	assert.Zero(t, d1.Capacity.Vc)
	assert.InDelta(t, 0.60*787.5, d1.Capacity.PhiVn, 1e-9)
}

func TestVerifyMemberColumnKeepsRawDemand(t *testing.T) {
	m := Member{
		Name:          "C-1",
		Length:        600,
		Thickness:     300,
		Height:        3000,
		Fc:            25,
		Fy:            420,
		Reinforcement: Reinforcement{Area: 157, Spacing: 150, Fyt: 420},
		Combinations: []Combination{
			{Name: "E", Shear1: 150, Axial: 2000},
		},
	}

	res := VerifyMember(m, DefaultOptions())

	assert.Equal(t, member.CategoryColumn, res.Class1.Category)
	require.Len(t, res.Results, 1)

	d1 := res.Results[0].Dir1
	assert.False(t, d1.Amplified)
	assert.False(t, d1.CapacityDesigned)
	assert.InDelta(t, 150.0, d1.Demand, 1e-9)
	// Vn = 122.4 + 211.008, φ = 0.60
	assert.InDelta(t, 150.0/(0.60*333.408), d1.DCR, 1e-6)
	assert.True(t, res.Passes)
}

func TestVerifyMemberForceCapacityDesignWithoutMoments(t *testing.T) {
	m := slenderWall()
	m.Combinations = []Combination{
		{Name: "E", Shear1: 300},
	}

	opts := DefaultOptions()
	opts.ForceCapacityDesign = true
	res := VerifyMember(m, opts)
	require.Len(t, res.Results, 1)

	d1 := res.Results[0].Dir1
	assert.False(t, d1.CapacityDesigned, "fallback demotes to raw analysis shear")
	assert.False(t, d1.Amplified)
	assert.InDelta(t, 300.0, d1.Demand, 1e-9)
	assert.NotEmpty(t, d1.CapacityDesignFlag)
	require.NotEmpty(t, res.Results[0].Warnings)
	assert.Contains(t, res.Results[0].Warnings[0], "overstrength end moments unavailable")
}

func TestVerifyMemberGoverningReduction(t *testing.T) {
	m := slenderWall()
	m.Combinations = []Combination{
		{Name: "low", Shear1: 100},
		{Name: "high", Shear1: 520},
		{Name: "mid", Shear1: 300},
	}

	res := VerifyMember(m, DefaultOptions())
	require.Len(t, res.Results, 3)

	assert.Equal(t, 1, res.Governing)
	assert.Equal(t, res.Results[1].Combined.DCR, res.GoverningDCR)
}

func TestVerifyMemberNoCombinations(t *testing.T) {
	res := VerifyMember(slenderWall(), DefaultOptions())

	assert.Empty(t, res.Results)
	assert.Equal(t, -1, res.Governing)
	assert.True(t, res.Passes)
}

func TestVerifyMemberInvalidGeometry(t *testing.T) {
	m := slenderWall()
	m.Length = 0
	m.Combinations = []Combination{{Name: "E", Shear1: 100}}

	res := VerifyMember(m, DefaultOptions())

	assert.True(t, res.Class1.InvalidGeometry)
	assert.NotEmpty(t, res.Warnings)
	require.Len(t, res.Results, 1)
	assert.False(t, res.Results[0].Dir1.DCRDefined)
	assert.False(t, res.Passes, "demand against zero strength cannot pass")
}

func TestVerifyMemberGroupCeilingWarning(t *testing.T) {
	m := Member{
		Name:          "W-2",
		Length:        3000,
		Thickness:     250,
		Height:        3000, // squat: αc at 0.25
		Fc:            25,
		Fy:            420,
		Reinforcement: Reinforcement{RhoH: 0.005, Fyt: 420},
		InGroup:       true,
		Combinations:  []Combination{{Name: "E", Shear1: 400, Axial: 2000}},
	}

	res := VerifyMember(m, DefaultOptions())
	require.Len(t, res.Results, 1)

	d1 := res.Results[0].Dir1
	// Vc+Vs = 937.5+1575 = 2512.5 > group ceiling 2475
	assert.True(t, d1.Capacity.VnLimited)
	assert.InDelta(t, 2475.0, d1.Capacity.Vn, 1e-9)
	assert.NotEmpty(t, res.Results[0].Warnings)
}

func TestVerifyMemberOverrideWarning(t *testing.T) {
	m := Member{
		Name:          "P-1",
		Length:        800,
		Thickness:     250,
		Height:        3000,
		Fc:            25,
		Fy:            420,
		Reinforcement: Reinforcement{RhoH: 0.0025, Fyt: 420},
	}

	res := VerifyMember(m, DefaultOptions())

	assert.True(t, res.Class1.Overridden)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "column detailing provisions do not apply")
}
