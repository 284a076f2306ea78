package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReset_Placement(t *testing.T) {
	w := newTestWorld(t, testProfile())
	w.Reset()

	require.Equal(t, Counts{14, 14, 0, 0}, w.Counts())
	assert.Equal(t, Counts{14, 14, 0, 0}, w.Stats().Requested)
	assert.Equal(t, Counts{14, 14, 0, 0}, w.Stats().Placed)

	ps := w.Particles()
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			d := ps[i].Pos.Dist(ps[j].Pos)
			assert.GreaterOrEqual(t, d, ps[i].Radius+ps[j].Radius+spawnMargin)
		}
	}

	for _, p := range ps {
		r := w.regions.Acid
		if p.Species == Alcohol {
			r = w.regions.Alcohol
		}
		assert.GreaterOrEqual(t, p.Pos.X, r.X0*w.Width)
		assert.LessOrEqual(t, p.Pos.X, r.X1*w.Width)
		assert.GreaterOrEqual(t, p.Pos.Y, r.Y0*w.Height)
		assert.LessOrEqual(t, p.Pos.Y, r.Y1*w.Height)

		vmax := p.Species.Props().MaxSpeed
		assert.GreaterOrEqual(t, p.Vel.Len(), minSpeedFrac*vmax-eps)
		assert.LessOrEqual(t, p.Vel.Len(), vmax+eps)
	}
}

func TestReset_TemperatureScalesSpawnSpeed(t *testing.T) {
	w := newTestWorld(t, testProfile())
	require.NoError(t, w.SetTemperature(4))
	w.Reset()

	for _, p := range w.Particles() {
		vmax := 4 * p.Species.Props().MaxSpeed
		assert.GreaterOrEqual(t, p.Vel.Len(), minSpeedFrac*vmax-eps)
		assert.LessOrEqual(t, p.Vel.Len(), vmax+eps)
	}
}

func TestReset_ReplacesParticles(t *testing.T) {
	w := newTestWorld(t, testProfile())
	w.Reset()
	for i := 0; i < 100; i++ {
		w.Step()
	}

	require.NoError(t, w.SetCounts(3, 9))
	w.Reset()
	assert.Equal(t, Counts{3, 9, 0, 0}, w.Counts())
	assert.Equal(t, 0, w.Tick())
	assert.Equal(t, 0, w.Stats().Reactions)
}

func TestReset_Shortfall(t *testing.T) {
	w := newTestWorld(t, testProfile())
	require.NoError(t, w.SetCounts(400, 0))
	require.NoError(t, w.SetRegions(Regions{
		Acid:    Rect{X0: 0.45, X1: 0.55, Y0: 0.45, Y1: 0.55},
		Alcohol: Rect{X0: 0, X1: 1, Y0: 0, Y1: 1},
	}))

	w.Reset()

	s := w.Stats()
	assert.Equal(t, 400, s.Requested[Acid])
	assert.Greater(t, s.Placed[Acid], 0)
	assert.Less(t, s.Placed[Acid], 400)
	assert.Equal(t, s.Placed, w.Counts())
}

func TestReset_Empty(t *testing.T) {
	w := newTestWorld(t, testProfile())
	require.NoError(t, w.SetCounts(0, 0))
	w.Reset()
	assert.Empty(t, w.Particles())
	w.Step()
	assert.Equal(t, Counts{}, w.Counts())
}

func TestBounds_ShrinksToArena(t *testing.T) {
	w := newTestWorld(t, testProfile())
	x0, x1, y0, y1 := w.bounds(Rect{X0: 0, X1: 1, Y0: 0, Y1: 1}, 15)
	assert.Equal(t, 15.0, x0)
	assert.Equal(t, 885.0, x1)
	assert.Equal(t, 15.0, y0)
	assert.Equal(t, 545.0, y1)
}
