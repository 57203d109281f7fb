package verify

import (
	"fmt"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/member"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
	"github.com/wilterwhite/ingeo-structures-sub000/internal/shear"
)

// Member is one lateral member with its demand combinations. All fields
// come from the caller (model ingestion, flexural collaborator); nothing
// here is derived or persisted.
type Member struct {
	Name string `json:"name"`

	// Geometry (mm) - length along direction 1, thickness along
	// direction 2
	Length    float64 `json:"length"`
	Thickness float64 `json:"thickness"`
	Height    float64 `json:"height"`

	// Materials (MPa)
	Fc float64 `json:"fc"`
	Fy float64 `json:"fy"`

	// Transverse reinforcement per direction; direction 2 falls back
	// to direction 1 when absent
	Reinforcement     Reinforcement  `json:"reinforcement"`
	ReinforcementDir2 *Reinforcement `json:"reinforcement_dir2,omitempty"`

	// InGroup marks a segment verified as part of a connected wall
	// group, which tightens the wall nominal strength ceiling
	InGroup bool `json:"in_group,omitempty"`

	// CouplingBeam marks a coupling beam: always capacity-designed,
	// never amplified
	CouplingBeam bool `json:"coupling_beam,omitempty"`

	Combinations []Combination `json:"combinations"`
}

// Reinforcement is the transverse steel for one direction.
type Reinforcement struct {
	Area    float64 `json:"area"`            // Av per shear plane (mm²)
	Spacing float64 `json:"spacing"`         // mm
	Fyt     float64 `json:"fyt"`             // MPa
	RhoH    float64 `json:"rho_h,omitempty"` // distributed ratio override
}

// Combination is one factored demand record. Sign convention:
// compression-positive axial; ingestion flips signs when the source
// convention differs.
type Combination struct {
	Name  string  `json:"name"`
	Axial float64 `json:"axial"` // Pu (kN)

	Shear1 float64 `json:"shear_1"` // Vu along direction 1 (kN)
	Shear2 float64 `json:"shear_2"` // Vu along direction 2 (kN)

	// Probable overstrength end moments per direction (kN·m) and the
	// shared clear span (mm); zero when the flexural collaborator has
	// no data
	MprTop1    float64 `json:"mpr_top_1,omitempty"`
	MprBottom1 float64 `json:"mpr_bottom_1,omitempty"`
	MprTop2    float64 `json:"mpr_top_2,omitempty"`
	MprBottom2 float64 `json:"mpr_bottom_2,omitempty"`
	ClearSpan  float64 `json:"clear_span,omitempty"`
}

// CombinationResult is the verdict for one member under one combination.
type CombinationResult struct {
	Name string

	Dir1     shear.DirectionalVerification
	Dir2     shear.DirectionalVerification
	Combined shear.CombinedVerification

	Warnings []string
}

// MemberResult is the full per-member output record.
type MemberResult struct {
	Name string

	// Classification per direction; downstream detailing components
	// consume these
	Class1 member.Classification
	Class2 member.Classification

	Results []CombinationResult

	// Governing is the index of the maximum-DCR combination; -1 when
	// the member has no combinations
	Governing    int
	GoverningDCR float64
	Passes       bool

	Warnings []string
}

// VerifyMember runs the full pipeline for one member: classification,
// demand routing, strength assembly for both directions, biaxial
// combination, and the governing-combination reduction.
//
// Edge cases surface as warnings on the result; the function never
// fails on degenerate input, so a batch completes even when individual
// members are malformed.
func VerifyMember(m Member, opts Options) MemberResult {
	res := MemberResult{
		Name:      m.Name,
		Governing: -1,
		Passes:    true,
	}

	sec1 := shear.Section{
		Length:    m.Length,
		Thickness: m.Thickness,
		Height:    m.Height,
		Fc:        m.Fc,
		Fy:        m.Fy,
		Lambda:    opts.LightweightFactor,
	}
	sec2 := sec1
	sec2.Length, sec2.Thickness = sec1.Thickness, sec1.Length

	res.Class1 = member.Classify(sec1.Length, sec1.Thickness, sec1.Height)
	res.Class2 = member.Classify(sec2.Length, sec2.Thickness, sec2.Height)
	if res.Class1.InvalidGeometry {
		res.Warnings = append(res.Warnings,
			"invalid geometry: non-positive dimension, conservative WALL classification assumed")
	}
	if res.Class1.Overridden {
		res.Warnings = append(res.Warnings, res.Class1.OverrideReason)
	}

	reinf1 := m.Reinforcement.toShear()
	reinf2 := reinf1
	if m.ReinforcementDir2 != nil {
		reinf2 = m.ReinforcementDir2.toShear()
	}

	mats := nscp.LimitShearMaterials(m.Fc, m.Reinforcement.Fyt, opts.LightweightFactor)
	for _, note := range mats.Notes {
		res.Warnings = append(res.Warnings, note.String())
	}

	// Maximum factored shear per direction over all combinations, used
	// by the zero-concrete-contribution rule
	var vuMax1, vuMax2 float64
	for _, c := range m.Combinations {
		if v := absShear(c.Shear1); v > vuMax1 {
			vuMax1 = v
		}
		if v := absShear(c.Shear2); v > vuMax2 {
			vuMax2 = v
		}
	}

	category := opts.Category()
	for _, combo := range m.Combinations {
		cr := CombinationResult{Name: combo.Name}

		d1 := shear.DemandForces{
			Shear: combo.Shear1, Axial: combo.Axial,
			MprTop: combo.MprTop1, MprBottom: combo.MprBottom1,
			ClearSpan: combo.ClearSpan,
		}
		d2 := shear.DemandForces{
			Shear: combo.Shear2, Axial: combo.Axial,
			MprTop: combo.MprTop2, MprBottom: combo.MprBottom2,
			ClearSpan: combo.ClearSpan,
		}

		cr.Dir1 = verifyDirection(m, res.Class1, sec1, reinf1, mats, d1, vuMax1, category, opts, &cr, "dir 1")
		cr.Dir2 = verifyDirection(m, res.Class2, sec2, reinf2, mats, d2, vuMax2, category, opts, &cr, "dir 2")
		cr.Combined = shear.Combine(cr.Dir1, cr.Dir2)

		res.Results = append(res.Results, cr)
	}

	for i, cr := range res.Results {
		if !cr.Combined.Passes {
			res.Passes = false
		}
		if !cr.Combined.DCRDefined {
			continue
		}
		if res.Governing < 0 || cr.Combined.DCR > res.GoverningDCR {
			res.Governing = i
			res.GoverningDCR = cr.Combined.DCR
		}
	}
	if res.Governing < 0 && len(res.Results) > 0 {
		// No defined ratio anywhere; report the first combination
		res.Governing = 0
	}

	return res
}

// verifyDirection routes the demand and assembles the capacity for one
// direction.
func verifyDirection(m Member, class member.Classification, sec shear.Section, reinf shear.TransverseReinforcement, mats nscp.LimitedMaterials, d shear.DemandForces, vuMax float64, category nscp.SeismicCategory, opts Options, cr *CombinationResult, label string) shear.DirectionalVerification {
	demand := d.Shear
	ve := absShear(d.Shear)

	capacityDesigned := m.CouplingBeam || opts.ForceCapacityDesign || d.HasOverstrength()

	var cdFlag string
	var amplified bool
	var amplFactor float64

	if capacityDesigned {
		cd := shear.CapacityDesignShear(d, opts.UseOverstrengthAlternative, opts.OverstrengthFactor)
		demand = cd.Demand
		ve = cd.Ve
		if !cd.Applied {
			ve = absShear(demand)
			capacityDesigned = false
		}
		if cd.Flag != "" {
			cdFlag = cd.Flag
			cr.Warnings = append(cr.Warnings, fmt.Sprintf("%s: %s", label, cd.Flag))
		}
	} else if class.Family == member.FamilyWall {
		// Amplification never applies to capacity-designed members or
		// coupling beams; columns keep their raw analysis demand
		ampl := shear.AmplifyDemand(d.Shear, class.HwOverLw, opts.BuildingHeight,
			opts.UseOverstrengthAlternative, opts.OverstrengthFactor)
		demand = ampl.Demand
		ve = absShear(demand)
		amplified = ampl.Factor > 1.0
		amplFactor = ampl.Factor
	}

	zeroVc := shear.ZeroConcreteCondition(ve, vuMax, d.Axial, sec.GrossArea(), mats.Fc)

	capacity := shear.AssembleCapacity(class, sec, reinf, mats, zeroVc, m.InGroup, category)
	v := shear.VerifyDirection(capacity, demand)
	v.CapacityDesigned = capacityDesigned
	v.CapacityDesignFlag = cdFlag
	v.Amplified = amplified
	v.AmplificationFactor = amplFactor

	if capacity.VsLimited {
		cr.Warnings = append(cr.Warnings, fmt.Sprintf(
			"%s: steel contribution capped at %.1f kN", label, capacity.VsCap))
	}
	if capacity.VnLimited {
		cr.Warnings = append(cr.Warnings, fmt.Sprintf(
			"%s: nominal strength capped at material ceiling %.1f kN", label, capacity.VnCeiling))
	}
	if demand != 0 && !v.DCRDefined {
		cr.Warnings = append(cr.Warnings, fmt.Sprintf(
			"%s: design strength is zero, DCR undefined", label))
	}

	return v
}

func (r Reinforcement) toShear() shear.TransverseReinforcement {
	return shear.TransverseReinforcement{
		Area:    r.Area,
		Spacing: r.Spacing,
		Fyt:     r.Fyt,
		RhoH:    r.RhoH,
	}
}

func absShear(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
