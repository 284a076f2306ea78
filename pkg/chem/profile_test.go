package chem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Validate())

	acid, alcohol := p.Counts()
	assert.Equal(t, 14, acid)
	assert.Equal(t, 14, alcohol)
	assert.Equal(t, BaseParams, p.Base)
	assert.Equal(t, DiagnosticParams, p.Diag)
}

func TestStartCounts(t *testing.T) {
	cases := []struct {
		mode          StartMode
		acid, alcohol int
	}{
		{StartStoich, 14, 14},
		{StartAlcohol, 14, 22},
		{StartAcid, 22, 14},
	}
	for _, c := range cases {
		acid, alcohol := StartCounts(c.mode, 14, 8)
		assert.Equal(t, c.acid, acid, string(c.mode))
		assert.Equal(t, c.alcohol, alcohol, string(c.mode))
	}
}

func TestParseStartMode(t *testing.T) {
	for in, want := range map[string]StartMode{
		"":        StartStoich,
		"stoich":  StartStoich,
		"MeOH":    StartAlcohol,
		"alcohol": StartAlcohol,
		"sa":      StartAcid,
		" acid ":  StartAcid,
	} {
		got, err := ParseStartMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStartMode("ethanol")
	assert.ErrorIs(t, err, ErrUnknownStartMode)
}

func TestParseProfile(t *testing.T) {
	src := []byte(`
Label: hot
StartMode: meoh
Temperature: 3
Diagnostic: true
Arena:
  Width: 400
  Height: 300
BaseParams:
  ReactionProbability: 0.5
Log:
  Level: error
`)
	p, err := ParseProfile(src)
	require.NoError(t, err)

	assert.Equal(t, "hot", p.Label)
	assert.Equal(t, StartAlcohol, p.StartMode)
	assert.Equal(t, 3, p.Temperature)
	assert.True(t, p.Diagnostic)
	assert.Equal(t, Arena{Width: 400, Height: 300}, p.Arena)
	assert.Equal(t, 0.5, p.Base.ReactionProbability)
	assert.Equal(t, "error", p.LogConfig.LogLevel)

	//untouched keys keep their defaults
	def := DefaultProfile()
	assert.Equal(t, def.Regions, p.Regions)
	assert.Equal(t, def.Base.Kick, p.Base.Kick)
	assert.Equal(t, def.Diag, p.Diag)

	acid, alcohol := p.Counts()
	assert.Equal(t, 14, acid)
	assert.Equal(t, 22, alcohol)
}

func TestParseProfile_ExplicitCounts(t *testing.T) {
	p, err := ParseProfile([]byte("StartMode: acid\nAcid: 20\nAlcohol: 5\n"))
	require.NoError(t, err)
	acid, alcohol := p.Counts()
	assert.Equal(t, 20, acid)
	assert.Equal(t, 5, alcohol)
}

func TestParseProfile_Invalid(t *testing.T) {
	cases := map[string]string{
		"temperature": "Temperature: 9\n",
		"count":       "Acid: -3\n",
		"arena":       "Arena:\n  Width: 0\n  Height: 10\n",
		"region":      "Regions:\n  Acid:\n    X0: 0.9\n    X1: 0.1\n    Y0: 0\n    Y1: 1\n",
		"probability": "BaseParams:\n  ReactionProbability: 1.5\n",
		"start mode":  "StartMode: ethanol\n",
		"syntax":      "Temperature: [\n",
	}
	for name, src := range cases {
		_, err := ParseProfile([]byte(src))
		assert.Error(t, err, name)
	}

	_, err := ParseProfile([]byte("Temperature: 9\n"))
	assert.ErrorIs(t, err, ErrInvalidTemperature)
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Seed: 99\nExcess: 4\nStartMode: sa\n"), 0644))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), p.Seed)
	acid, alcohol := p.Counts()
	assert.Equal(t, 18, acid)
	assert.Equal(t, 14, alcohol)

	_, err = LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadProfile_Bundled(t *testing.T) {
	p, err := LoadProfile(filepath.Join("..", "..", "profiles", "hot-meoh.yaml"))
	require.NoError(t, err)
	assert.Equal(t, StartAlcohol, p.StartMode)
	assert.Equal(t, 3, p.Temperature)
	assert.InDelta(t, BaseParams.DT, p.Base.DT, 1e-12)
	assert.Equal(t, DiagnosticParams, p.Diag)
}
