// Package verify chains classification, demand routing, strength
// assembly and biaxial combination into per-member verdicts, and runs
// member batches in parallel.
package verify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

// Options is the recognized run configuration. The zero value is not
// usable; start from DefaultOptions, which is maximally conservative.
type Options struct {
	// SeismicCategory is the ductility demand category name:
	// ORDINARY, INTERMEDIATE or SPECIAL
	SeismicCategory string `yaml:"seismic_category"`

	// LightweightFactor is λ; 1.0 for normal weight concrete
	LightweightFactor float64 `yaml:"lightweight_factor"`

	// UseOverstrengthAlternative bounds capacity-design demand by
	// Ω0 × analysis shear, and substitutes Ω0 for the amplification
	// product
	UseOverstrengthAlternative bool    `yaml:"use_overstrength_alternative"`
	OverstrengthFactor         float64 `yaml:"overstrength_factor"`

	// ForceCapacityDesign treats members without overstrength moments
	// as capacity-designed (raw-demand fallback, flagged) instead of
	// routing them through amplification
	ForceCapacityDesign bool `yaml:"force_capacity_design"`

	// BuildingHeight is the total building height in meters, used by
	// the height amplification factor
	BuildingHeight float64 `yaml:"building_height"`

	// Workers bounds batch concurrency; 0 means one worker per CPU
	Workers int `yaml:"workers"`
}

// DefaultOptions returns the most conservative configuration.
func DefaultOptions() Options {
	return Options{
		SeismicCategory:    "SPECIAL",
		LightweightFactor:  nscp.LambdaNormalWeight,
		OverstrengthFactor: 3.0,
	}
}

// Category resolves the configured seismic category, defaulting to
// SPECIAL for unrecognized names.
func (o Options) Category() nscp.SeismicCategory {
	c, err := nscp.ParseSeismicCategory(o.SeismicCategory)
	if err != nil {
		return nscp.CategorySpecial
	}
	return c
}

// LoadOptions reads a YAML options file over the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	if _, err := nscp.ParseSeismicCategory(opts.SeismicCategory); err != nil {
		return opts, err
	}
	if opts.LightweightFactor < 0 {
		return opts, fmt.Errorf("lightweight_factor must be ≥ 0, got %.3f", opts.LightweightFactor)
	}
	return opts, nil
}
