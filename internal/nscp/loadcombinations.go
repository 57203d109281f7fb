package nscp

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SeismicCombinations are the combinations that include earthquake load,
// the ones relevant to lateral member shear verification.
var SeismicCombinations = []LoadCombination{
	LoadCombinations[4],
	LoadCombinations[6],
}

// LoadForces holds unfactored member forces from each load type.
// Shear in kN, axial in kN with compression positive.
type LoadForces struct {
	Dead       MemberForces
	Live       MemberForces
	Roof       MemberForces
	Wind       MemberForces
	Earthquake MemberForces
	Rain       MemberForces
}

// MemberForces is one load case's contribution to a member.
type MemberForces struct {
	Shear float64 // kN
	Axial float64 // kN, compression positive
}

// Factor applies the combination's load factors to a set of unfactored
// member forces.
func (lc LoadCombination) Factor(f LoadForces) MemberForces {
	return MemberForces{
		Shear: lc.Dead*f.Dead.Shear + lc.Live*f.Live.Shear +
			lc.Roof*f.Roof.Shear + lc.Wind*f.Wind.Shear +
			lc.Earthquake*f.Earthquake.Shear + lc.Rain*f.Rain.Shear,
		Axial: lc.Dead*f.Dead.Axial + lc.Live*f.Live.Axial +
			lc.Roof*f.Roof.Axial + lc.Wind*f.Wind.Axial +
			lc.Earthquake*f.Earthquake.Axial + lc.Rain*f.Rain.Axial,
	}
}

// GoverningShear finds the combination producing the largest absolute
// factored shear.
func GoverningShear(f LoadForces, combinations []LoadCombination) (MemberForces, LoadCombination) {
	var governing MemberForces
	var governingCombo LoadCombination

	for _, combo := range combinations {
		vu := combo.Factor(f)
		if abs(vu.Shear) > abs(governing.Shear) {
			governing = vu
			governingCombo = combo
		}
	}

	return governing, governingCombo
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
