package shear

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilterwhite/ingeo-structures-sub000/internal/nscp"
)

func TestOmegaV(t *testing.T) {
	assert.Equal(t, 1.0, OmegaV(0.5))
	assert.Equal(t, 1.0, OmegaV(1.0))
	assert.InDelta(t, 1.25, OmegaV(1.5), 1e-9)
	assert.Equal(t, nscp.OmegaVMax, OmegaV(2.0))
	assert.Equal(t, nscp.OmegaVMax, OmegaV(5.0))
}

func TestOmegaHeight(t *testing.T) {
	// Not a slender wall: always 1.0 regardless of height
	assert.Equal(t, 1.0, OmegaHeight(1.5, 100))
	assert.Equal(t, 1.0, OmegaHeight(2.0, 100))

	// Slender wall: 0.5·∛H, floored at 1.0
	assert.InDelta(t, 2.0, OmegaHeight(2.5, 64), 1e-9)
	assert.InDelta(t, 1.0, OmegaHeight(2.5, 8), 1e-9)
	assert.Equal(t, 1.0, OmegaHeight(2.5, 1), "short building floored at 1.0")
	assert.Equal(t, 1.0, OmegaHeight(2.5, 0))
}

func TestAmplificationProductNeverBelowOne(t *testing.T) {
	for _, ratio := range []float64{0, 0.5, 1.0, 1.5, 2.0, 2.5, 4.0} {
		for _, height := range []float64{0, 1, 8, 30, 100} {
			r := AmplifyDemand(100, ratio, height, false, 0)
			assert.GreaterOrEqual(t, r.Factor, 1.0,
				"hw/lw=%.1f H=%.0f", ratio, height)
		}
	}
}

func TestAmplifyDemand(t *testing.T) {
	// hw/lw = 2.5, short building: Ωv = 1.5, ωh = 1.0
	r := AmplifyDemand(500, 2.5, 0, false, 0)

	assert.InDelta(t, 1.5, r.OmegaV, 1e-9)
	assert.InDelta(t, 1.0, r.OmegaHeight, 1e-9)
	assert.InDelta(t, 1.5, r.Factor, 1e-9)
	assert.InDelta(t, 750.0, r.Demand, 1e-9)
	assert.False(t, r.SystemOverstrength)
}

func TestAmplifyDemandTallBuilding(t *testing.T) {
	// Ωv = 1.5, ωh = 0.5·∛64 = 2.0 → demand ×3
	r := AmplifyDemand(200, 3.0, 64, false, 0)

	assert.InDelta(t, 3.0, r.Factor, 1e-9)
	assert.InDelta(t, 600.0, r.Demand, 1e-9)
}

func TestAmplifyDemandSystemOverstrength(t *testing.T) {
	r := AmplifyDemand(200, 3.0, 64, true, 3.0)

	assert.True(t, r.SystemOverstrength)
	assert.Equal(t, 1.0, r.OmegaHeight, "height factor dropped under the Ω0 alternative")
	assert.InDelta(t, 3.0, r.Factor, 1e-9)
	assert.InDelta(t, 600.0, r.Demand, 1e-9)

	// An Ω0 below 1.0 is ignored and the tabulated product applies
	r = AmplifyDemand(200, 3.0, 64, true, 0.9)
	assert.False(t, r.SystemOverstrength)
	assert.InDelta(t, 3.0, r.Factor, 1e-9)
}
