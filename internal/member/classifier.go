package member

import "fmt"

// Category identifies which set of code provisions a lateral member
// falls under.
type Category int

const (
	CategoryColumn Category = iota
	CategoryWall
	CategoryWallSquat
	CategoryWallPierAsColumn
	CategoryWallPierAlternate
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryColumn:
		return "COLUMN"
	case CategoryWall:
		return "WALL"
	case CategoryWallSquat:
		return "WALL_SQUAT"
	case CategoryWallPierAsColumn:
		return "WALL_PIER_AS_COLUMN"
	case CategoryWallPierAlternate:
		return "WALL_PIER_ALTERNATE"
	}
	return "UNKNOWN"
}

// FormulaFamily selects which shear strength formulas apply.
type FormulaFamily int

const (
	// FamilyBeamColumn uses Vc = 0.17 λ √f'c bw d with stirrup-based Vs
	FamilyBeamColumn FormulaFamily = iota
	// FamilyWall uses Vc = αc λ √f'c Acv with distributed-steel Vs
	FamilyWall
)

// String returns the family name.
func (f FormulaFamily) String() string {
	if f == FamilyBeamColumn {
		return "BEAM_COLUMN"
	}
	return "WALL"
}

// Geometry-ratio thresholds of the classification rules
// NSCP 2015 Sections 418.10.8.1, 418.7 scope
const (
	// lw/t below which a section is column-shaped
	ColumnShapeRatio = 4.0
	// minimum short-to-long cross-section ratio for column detailing
	// (Section 418.7.2.1)
	ColumnMinAspect = 0.4
	// hw/lw at or above which a segment is a full wall
	WallSlendernessRatio = 2.0
	// lw/t limits splitting wall piers (Section 418.10.8)
	PierAsColumnRatio  = 2.5
	PierAlternateRatio = 6.0
)

// Classification is the result of the geometry decision tree. It is
// recomputed per call and never cached.
type Classification struct {
	Category Category
	Family   FormulaFamily

	// Governing ratios
	LwOverT  float64 // length along analysis direction / thickness
	HwOverLw float64 // clear height / length
	// Short-to-long cross-section aspect ratio; meaningful only when
	// the section is column-shaped
	ShortLong float64

	// Overridden is set when a column-shaped section was forced onto a
	// wall category by the cross-section aspect ratio rule
	Overridden     bool
	OverrideReason string

	// InvalidGeometry is set when non-positive dimensions forced the
	// most conservative category
	InvalidGeometry bool
}

// Classify determines the code category of a lateral member from its
// geometry. Length is measured along the analysis direction, thickness
// orthogonal to it, height is the clear (unsupported) height, all in mm.
//
// Non-positive dimensions never produce an error: the member is assigned
// the most conservative category (WALL) with InvalidGeometry set, so one
// bad row does not halt a batch.
func Classify(length, thickness, height float64) Classification {
	if length <= 0 || thickness <= 0 || height <= 0 {
		return Classification{
			Category:        CategoryWall,
			Family:          FamilyWall,
			InvalidGeometry: true,
		}
	}

	c := Classification{
		LwOverT:  length / thickness,
		HwOverLw: height / length,
	}

	short, long := thickness, length
	if length < thickness {
		short, long = length, thickness
	}
	c.ShortLong = short / long

	// Column-shaped sections use column provisions only when the
	// cross-section meets the minimum aspect ratio; a section failing
	// it cannot rely on column ductile detailing and is verified as a
	// wall segment instead (Section 418.7.2.1).
	if c.LwOverT < ColumnShapeRatio {
		if c.ShortLong >= ColumnMinAspect {
			c.Category = CategoryColumn
			c.Family = FamilyBeamColumn
			return c
		}
		c.Overridden = true
		c.OverrideReason = fmt.Sprintf(
			"column-shaped section (lw/t = %.2f < %.1f) with cross-section aspect %.3f < %.1f; column detailing provisions do not apply, verified as wall segment",
			c.LwOverT, ColumnShapeRatio, c.ShortLong, ColumnMinAspect)
	}

	c.Category, c.Family = wallCategory(c.HwOverLw, c.LwOverT)
	return c
}

// wallCategory splits wall-type segments by slenderness and by the
// length-to-thickness ratio of the pier.
func wallCategory(hwOverLw, lwOverT float64) (Category, FormulaFamily) {
	if hwOverLw >= WallSlendernessRatio {
		return CategoryWall, FamilyWall
	}
	switch {
	case lwOverT <= PierAsColumnRatio:
		return CategoryWallPierAsColumn, FamilyBeamColumn
	case lwOverT <= PierAlternateRatio:
		return CategoryWallPierAlternate, FamilyWall
	default:
		return CategoryWallSquat, FamilyWall
	}
}

// IsPier reports whether the category is one of the discrete wall pier
// categories subject to hybrid detailing rules.
func (c Classification) IsPier() bool {
	return c.Category == CategoryWallPierAsColumn || c.Category == CategoryWallPierAlternate
}
