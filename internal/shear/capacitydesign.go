package shear

// CapacityDesignResult is the demand derived from flexural overstrength
// at the member ends.
type CapacityDesignResult struct {
	Ve     float64 // capacity-design shear (kN)
	Demand float64 // final demand after the overstrength cap (kN)

	// Applied is false when capacity design could not be performed and
	// the raw analysis shear was used instead
	Applied bool
	Flag    string // reason capacity design was not applied or was capped

	// CappedByOverstrength is set when the Ω0·Vu alternative governed
	CappedByOverstrength bool
}

// CapacityDesignShear converts probable end-moment overstrength into a
// shear demand (NSCP 2015 Section 418.6.5.1):
//
//	Ve = (Mpr,top + Mpr,bottom) / ln
//
// Missing end moments fall back to the raw analysis shear, flagged. A
// non-positive clear span yields zero demand with a flag, never a
// division fault. When useOverstrengthAlternative is set, the demand is
// bounded by Ω0 times the analysis shear.
func CapacityDesignShear(d DemandForces, useOverstrengthAlternative bool, overstrengthFactor float64) CapacityDesignResult {
	if !d.HasOverstrength() {
		return CapacityDesignResult{
			Demand: d.Shear,
			Flag:   "capacity design not applied: overstrength end moments unavailable",
		}
	}
	if d.ClearSpan <= 0 {
		return CapacityDesignResult{
			Flag: "capacity design not applied: non-positive clear span",
		}
	}

	r := CapacityDesignResult{Applied: true}
	// Moments in kN·m, span in mm
	r.Ve = (abs(d.MprTop) + abs(d.MprBottom)) / (d.ClearSpan / 1000)
	r.Demand = r.Ve

	if useOverstrengthAlternative && overstrengthFactor > 0 {
		capped := overstrengthFactor * abs(d.Shear)
		if capped < r.Demand {
			r.Demand = capped
			r.CappedByOverstrength = true
			r.Flag = "demand capped by Ω0 × analysis shear"
		}
	}

	return r
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
