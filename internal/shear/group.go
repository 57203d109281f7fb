package shear

import "github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"

// SegmentCapacity is one wall segment's contribution to a connected
// group sharing a lateral load path.
type SegmentCapacity struct {
	Name      string
	Vn        float64 // nominal strength of the segment (kN)
	ShearArea float64 // Acv of the segment (mm²)
}

// GroupResult is the aggregate capacity check of a connected wall group.
type GroupResult struct {
	Sum       float64 // Σ individual nominal strengths (kN)
	Ceiling   float64 // group material ceiling (kN)
	Effective float64 // min(Sum, Ceiling) (kN)

	// ControlsGroupLimit is set iff the ceiling is strictly below the
	// sum of individual strengths
	ControlsGroupLimit bool

	Phi    float64
	PhiVn  float64 // design strength of the group (kN)
	Demand float64 // total demand on the group (kN)

	DCR        float64
	DCRDefined bool
	Passes     bool

	// Per-segment demand share by shear area, for reporting only;
	// the pass/fail decision uses the aggregate
	SegmentShares []SegmentShare
}

// SegmentShare is the reporting-only apportionment of group demand.
type SegmentShare struct {
	Name        string
	Vn          float64 // kN
	ShearArea   float64 // mm²
	DemandShare float64 // kN
}

// AggregateGroup caps the summed capacity of connected segments against
// the group material ceiling (NSCP 2015 Section 418.10.4.4):
//
//	ceiling = 0.66 √f'c ΣAcv
//
// The group coefficient is strictly lower than the individual-segment
// coefficient, so the aggregate is never simply the sum. fc is the
// limited concrete strength shared by the group (MPa).
func AggregateGroup(segments []SegmentCapacity, demand, fc float64, category nscp.SeismicCategory) GroupResult {
	r := GroupResult{
		Phi:    nscp.PhiShearFor(category),
		Demand: demand,
	}

	var totalArea float64
	for _, s := range segments {
		r.Sum += s.Vn
		totalArea += s.ShearArea
	}

	mats := nscp.LimitShearMaterials(fc, 0, nscp.LambdaNormalWeight)
	r.Ceiling = nscp.VnWallGroupCoeff * mats.SqrtFc * totalArea / 1000

	r.Effective = r.Sum
	if r.Ceiling < r.Sum {
		r.Effective = r.Ceiling
		r.ControlsGroupLimit = true
	}

	r.PhiVn = r.Phi * r.Effective
	if r.PhiVn > 0 {
		r.DCR = abs(demand) / r.PhiVn
		r.DCRDefined = true
		r.Passes = r.DCR <= 1.0
	} else if demand == 0 {
		r.Passes = true
	}

	for _, s := range segments {
		share := SegmentShare{Name: s.Name, Vn: s.Vn, ShearArea: s.ShearArea}
		if totalArea > 0 {
			share.DemandShare = demand * s.ShearArea / totalArea
		}
		r.SegmentShares = append(r.SegmentShares, share)
	}

	return r
}
