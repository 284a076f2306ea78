package monte

import (
	"testing"

	"github.com/srliao/estersim/pkg/chem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intp(v int) *int { return &v }

//small closed box where every acid/alcohol contact reacts
func testProfile(acid, alcohol int) chem.Profile {
	p := chem.DefaultProfile()
	p.Seed = 11
	p.LogConfig.LogLevel = "error"
	p.Arena = chem.Arena{Width: 320, Height: 240}
	p.Acid = intp(acid)
	p.Alcohol = intp(alcohol)
	p.Regions = chem.Regions{
		Acid:    chem.Rect{X0: 0, X1: 1, Y0: 0, Y1: 1},
		Alcohol: chem.Rect{X0: 0, X1: 1, Y0: 0, Y1: 1},
	}
	p.Base.ReactionProbability = 1.0
	return p
}

func newTestSim(t *testing.T, p chem.Profile, maxTicks, every int) *Simulator {
	t.Helper()
	s, err := New(p, maxTicks, every)
	require.NoError(t, err)
	s.Log = zap.NewNop().Sugar()
	return s
}

func TestNew_Invalid(t *testing.T) {
	p := testProfile(4, 4)

	_, err := New(p, 0, 10)
	assert.Error(t, err)
	_, err = New(p, 100, 0)
	assert.Error(t, err)

	p.Temperature = 7
	_, err = New(p, 100, 10)
	assert.ErrorIs(t, err, chem.ErrInvalidTemperature)
}

func TestSimCompletion_BadArgs(t *testing.T) {
	s := newTestSim(t, testProfile(4, 4), 100, 10)
	_, err := s.SimCompletion(0, 10, 1)
	assert.Error(t, err)
	_, err = s.SimCompletion(5, 0, 1)
	assert.Error(t, err)
	_, err = s.SimCompletion(5, 10, 0)
	assert.Error(t, err)
}

func TestSimCompletion(t *testing.T) {
	const (
		n        = 6
		maxTicks = 20000
		every    = 500
	)
	s := newTestSim(t, testProfile(4, 4), maxTicks, every)

	r, err := s.SimCompletion(n, 250, 3)
	require.NoError(t, err)

	assert.Equal(t, n, r.Runs)
	assert.Equal(t, n, r.Completed)

	var total float64
	for _, v := range r.Hist {
		total += v
	}
	assert.Equal(t, float64(n), total)
	assert.LessOrEqual(t, r.Min, r.Mean)
	assert.LessOrEqual(t, r.Mean, r.Max)
	assert.GreaterOrEqual(t, r.SD, 0.0)
	assert.Equal(t, 0, r.BinStart%r.BinSize)
	assert.LessOrEqual(t, float64(r.BinStart), r.Min)

	require.Len(t, r.Curve, maxTicks/every+1)
	assert.Equal(t, 0.0, r.Curve[0])
	assert.Equal(t, 4.0, r.Curve[len(r.Curve)-1])
	for i := 1; i < len(r.Curve); i++ {
		assert.GreaterOrEqual(t, r.Curve[i], r.Curve[i-1])
	}
}

func TestSimCompletion_Repeatable(t *testing.T) {
	p := testProfile(5, 3)

	a, err := newTestSim(t, p, 20000, 1000).SimCompletion(4, 100, 2)
	require.NoError(t, err)
	b, err := newTestSim(t, p, 20000, 1000).SimCompletion(4, 100, 4)
	require.NoError(t, err)

	assert.Equal(t, a.Hist, b.Hist)
	assert.Equal(t, a.Mean, b.Mean)
	assert.Equal(t, a.Curve, b.Curve)
}

func TestRunOne(t *testing.T) {
	s := newTestSim(t, testProfile(6, 2), 20000, 100)
	run := s.runOne(5)

	require.NoError(t, run.Err)
	assert.Equal(t, int64(5), run.Seed)
	assert.True(t, run.Completed)
	assert.Equal(t, 2, run.Reactions)
	assert.Equal(t, chem.Counts{4, 0, 2, 2}, run.Final)
	assert.LessOrEqual(t, run.Ticks, 20000)
}

func TestRunOne_Timeout(t *testing.T) {
	p := testProfile(3, 3)
	p.Base.ReactionProbability = 0
	s := newTestSim(t, p, 300, 100)
	run := s.runOne(1)

	require.NoError(t, run.Err)
	assert.False(t, run.Completed)
	assert.Equal(t, 300, run.Ticks)
	assert.Equal(t, []int{0, 0, 0, 0}, run.Curve)
}

func TestCurve(t *testing.T) {
	assert.Equal(t, []int{0, 1, 3, 3}, curve([]int{5, 12, 20}, 30, 10))
	assert.Equal(t, []int{0, 0, 0}, curve(nil, 10, 5))
	//a reaction on a sample tick counts at that sample
	assert.Equal(t, []int{0, 1}, curve([]int{4}, 4, 4))
}
