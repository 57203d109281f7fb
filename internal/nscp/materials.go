package nscp

import (
	"fmt"
	"math"
)

// NSCP 2015 Material Constants for Seismic Shear Design

const (
	// Upper bound on the √f'c value used in shear strength equations
	// Section 422.5.3.1
	SqrtFcMax = 8.3 // MPa

	// Equivalent ceiling on f'c entering shear equations (8.3² MPa)
	FcShearMax = SqrtFcMax * SqrtFcMax

	// Ceiling on f'c for lightweight concrete in shear calculations
	// Section 419.2.4
	FcLightweightMax = 35.0

	// Yield strength ceilings for transverse reinforcement
	// Section 420.2.2.4
	FytShearMax       = 420.0 // shear resistance use (MPa)
	FytConfinementMax = 700.0 // confinement use (MPa)

	// Strength reduction factors for shear (Section 421.2)
	PhiShear = 0.75
	// Section 421.2.4.1 - members under the highest ductility demand
	// where shear may govern before flexural yielding
	PhiShearSeismic = 0.60

	// Lightweight concrete modification factor bounds (Section 419.2.4)
	LambdaAllLightweight = 0.75
	LambdaNormalWeight   = 1.00
)

// SeismicCategory is the ductility demand category of the framing system.
type SeismicCategory int

const (
	CategorySpecial SeismicCategory = iota // highest ductility demand
	CategoryIntermediate
	CategoryOrdinary
)

// String returns the category name.
func (c SeismicCategory) String() string {
	switch c {
	case CategorySpecial:
		return "SPECIAL"
	case CategoryIntermediate:
		return "INTERMEDIATE"
	case CategoryOrdinary:
		return "ORDINARY"
	}
	return "UNKNOWN"
}

// ParseSeismicCategory converts a category name to a SeismicCategory.
// An empty name resolves to CategorySpecial, the most conservative.
func ParseSeismicCategory(s string) (SeismicCategory, error) {
	switch s {
	case "SPECIAL", "special", "":
		return CategorySpecial, nil
	case "INTERMEDIATE", "intermediate":
		return CategoryIntermediate, nil
	case "ORDINARY", "ordinary":
		return CategoryOrdinary, nil
	}
	return CategorySpecial, fmt.Errorf("unknown seismic category: %q", s)
}

// PhiShearFor returns the shear strength reduction factor for a category.
// NSCP 2015 Section 421.2.4.1
func PhiShearFor(category SeismicCategory) float64 {
	if category == CategorySpecial {
		return PhiShearSeismic
	}
	return PhiShear
}

// MaterialNote records a code-sanctioned clamp applied to an input value.
type MaterialNote struct {
	Field   string  // which quantity was limited
	Input   float64 // value supplied by the caller
	Limited float64 // value used in the calculation
	Basis   string  // code section authorizing the limit
}

func (n MaterialNote) String() string {
	return fmt.Sprintf("%s limited from %.1f to %.1f MPa (%s)", n.Field, n.Input, n.Limited, n.Basis)
}

// LimitedMaterials holds material strengths after code ceilings are applied.
type LimitedMaterials struct {
	Fc     float64 // f'c entering shear equations (MPa)
	SqrtFc float64 // √f'c entering shear equations (MPa)
	Fyt    float64 // transverse steel yield for shear use (MPa)
	Lambda float64 // lightweight modification factor
	Notes  []MaterialNote
}

// LimitShearMaterials clamps f'c and fyt to the ceilings the code imposes
// on shear strength calculations. Out-of-range inputs are not errors;
// each clamp is recorded as an informational note.
// NSCP 2015 Sections 422.5.3.1, 420.2.2.4, 419.2.4
func LimitShearMaterials(fc, fyt, lambda float64) LimitedMaterials {
	m := LimitedMaterials{Fc: fc, Fyt: fyt, Lambda: lambda}

	if m.Lambda <= 0 || m.Lambda > LambdaNormalWeight {
		m.Lambda = LambdaNormalWeight
	}

	fcMax := FcShearMax
	if m.Lambda < LambdaNormalWeight && FcLightweightMax < fcMax {
		fcMax = FcLightweightMax
	}
	if m.Fc > fcMax {
		m.Notes = append(m.Notes, MaterialNote{
			Field:   "f'c",
			Input:   m.Fc,
			Limited: fcMax,
			Basis:   "NSCP 422.5.3.1",
		})
		m.Fc = fcMax
	}
	if m.Fc < 0 {
		m.Fc = 0
	}
	m.SqrtFc = math.Sqrt(m.Fc)
	if m.SqrtFc > SqrtFcMax {
		m.SqrtFc = SqrtFcMax
	}

	if m.Fyt > FytShearMax {
		m.Notes = append(m.Notes, MaterialNote{
			Field:   "fyt",
			Input:   m.Fyt,
			Limited: FytShearMax,
			Basis:   "NSCP 420.2.2.4",
		})
		m.Fyt = FytShearMax
	}
	if m.Fyt < 0 {
		m.Fyt = 0
	}

	return m
}

// LimitConfinementYield clamps a yield strength used for confinement
// reinforcement. The ceiling is higher than for shear use.
// NSCP 2015 Section 420.2.2.4
func LimitConfinementYield(fyt float64) (float64, *MaterialNote) {
	if fyt > FytConfinementMax {
		note := MaterialNote{
			Field:   "fyt (confinement)",
			Input:   fyt,
			Limited: FytConfinementMax,
			Basis:   "NSCP 420.2.2.4",
		}
		return FytConfinementMax, &note
	}
	if fyt < 0 {
		return 0, nil
	}
	return fyt, nil
}
