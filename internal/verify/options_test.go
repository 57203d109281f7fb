package verify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, "SPECIAL", opts.SeismicCategory)
	assert.Equal(t, nscp.CategorySpecial, opts.Category())
	assert.Equal(t, 1.0, opts.LightweightFactor)
	assert.Equal(t, 3.0, opts.OverstrengthFactor)
	assert.False(t, opts.UseOverstrengthAlternative)
	assert.False(t, opts.ForceCapacityDesign)
}

func TestLoadOptions(t *testing.T) {
	path := writeFile(t, "options.yaml", `
seismic_category: ORDINARY
lightweight_factor: 0.75
use_overstrength_alternative: true
overstrength_factor: 2.5
building_height: 45
workers: 8
`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, nscp.CategoryOrdinary, opts.Category())
	assert.Equal(t, 0.75, opts.LightweightFactor)
	assert.True(t, opts.UseOverstrengthAlternative)
	assert.Equal(t, 2.5, opts.OverstrengthFactor)
	assert.Equal(t, 45.0, opts.BuildingHeight)
	assert.Equal(t, 8, opts.Workers)
}

func TestLoadOptionsPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "options.yaml", `building_height: 30`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "SPECIAL", opts.SeismicCategory)
	assert.Equal(t, 1.0, opts.LightweightFactor)
	assert.Equal(t, 30.0, opts.BuildingHeight)
}

func TestLoadOptionsErrors(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadOptions(writeFile(t, "bad.yaml", "seismic_category: [broken"))
	assert.ErrorContains(t, err, "parsing options file")

	_, err = LoadOptions(writeFile(t, "cat.yaml", "seismic_category: EXTREME"))
	assert.ErrorContains(t, err, "unknown seismic category")

	_, err = LoadOptions(writeFile(t, "lambda.yaml", "lightweight_factor: -0.5"))
	assert.ErrorContains(t, err, "lightweight_factor")
}

func TestCategoryFallsBackToSpecial(t *testing.T) {
	opts := Options{SeismicCategory: "bogus"}
	assert.Equal(t, nscp.CategorySpecial, opts.Category())
}
