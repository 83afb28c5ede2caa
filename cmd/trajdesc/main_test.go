package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/motorlab/gokin/prep"
	"github.com/motorlab/gokin/traj/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "trajdesc.json")
	js := `{
  "rate": 120,
  "cutoff": 8,
  "order": 4,
  "dims": 3,
  "alternative": [-0.2, 0, 0.4],
  "correct": [0.2, 0, 0.4]
}`
	require.NoError(t, os.WriteFile(name, []byte(js), 0o644))
	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.GetRate())
	assert.Equal(t, 8.0, cfg.GetCutoff())
	assert.Equal(t, 4, cfg.GetOrder())
	assert.Equal(t, 3, cfg.GetDims())
	assert.Equal(t, 0.6, cfg.GetSpeed(), "unset fields keep their defaults")
	assert.Equal(t, []string{"pos_x", "pos_z", "pos_y"}, cfg.GetAxes())
	assert.False(t, cfg.GetNormalize())
}

func TestLoadConfigYAML(t *testing.T) {
	name := filepath.Join(t.TempDir(), "trajdesc.yaml")
	y := "cutoff: 6\nfilter: false\naxes: [pos_z, pos_x]\nnormalize: true\n"
	require.NoError(t, os.WriteFile(name, []byte(y), 0o644))
	cfg, err := LoadConfig(name)
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.GetCutoff())
	assert.False(t, cfg.GetFilter())
	assert.Equal(t, []string{"pos_z", "pos_x"}, cfg.GetAxes())
	assert.True(t, cfg.GetNormalize())
	assert.Equal(t, 90.0, cfg.GetRate())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(filepath.Join(dir, "conf.toml"))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	cases := map[string]string{
		"syntax":   `{"rate": }`,
		"cutoff":   `{"rate": 90, "cutoff": 50}`,
		"dims":     `{"dims": 4}`,
		"targets":  `{"correct": [1, 0]}`,
		"targetsD": `{"dims": 3, "alternative": [1, 0], "correct": [0, 1]}`,
		"axes":     `{"dims": 3, "axes": ["pos_x", "pos_z"]}`,
	}
	for k, js := range cases {
		name := filepath.Join(dir, k+".json")
		require.NoError(t, os.WriteFile(name, []byte(js), 0o644))
		_, err := LoadConfig(name)
		assert.Error(t, err, k)
	}
}

// reach returns tracker data for a reach that starts at t=0.5 s,
// moving at 1 m/s in the x-z plane.
func reach(t *testing.T) *tracker.Data {
	n := 201
	ts := make([]float64, n)
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := range ts {
		ts[i] = 10 + float64(i)*0.01
		s := math.Max(0, ts[i]-10.5)
		x[i] = 0.6 * s
		y[i] = 1.2
		z[i] = 0.8 * s
	}
	D, err := tracker.NewData([]string{"time", "pos_x", "pos_y", "pos_z"}, ts, x, y, z)
	require.NoError(t, err)
	D.Shift("time", 10)
	return D
}

func TestPreprocess(t *testing.T) {
	f := false
	cfg := &Config{Filter: &f}
	T, err := Preprocess(cfg, reach(t), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, T.Dim())
	p := T.Point(0)
	assert.InDelta(t, 0.006, p[0], 0.01)
	assert.InDelta(t, 0.008, p[1], 0.01)

	T, err = Preprocess(cfg, reach(t), 1.0)
	require.NoError(t, err)
	p = T.Point(0)
	assert.InDelta(t, 0.3, p[0], 0.01)
	assert.InDelta(t, 0.4, p[1], 0.01)

	three := 3
	T, err = Preprocess(&Config{Dims: &three}, reach(t), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, T.Dim())
	assert.InDelta(t, 1.2, T.Point(0)[2], 1e-6)
}

func TestPreprocessShortTrial(t *testing.T) {
	D, err := tracker.NewData([]string{"time", "pos_x", "pos_y", "pos_z"},
		[]float64{0, 0.002, 0.005}, []float64{0, 0.1, 0.2}, []float64{1, 1, 1}, []float64{0, 0.1, 0.2})
	require.NoError(t, err)
	_, err = Preprocess(&Config{}, D, 0)
	assert.ErrorIs(t, err, prep.ErrTooFewSamples)

	//two grid samples pass resampling but are too few for the chain
	D, err = tracker.NewData([]string{"time", "pos_x", "pos_y", "pos_z"},
		[]float64{0, 0.006, 0.012}, []float64{0, 0.1, 0.2}, []float64{1, 1, 1}, []float64{0, 0.1, 0.2})
	require.NoError(t, err)
	_, err = Preprocess(&Config{}, D, 0)
	assert.ErrorIs(t, err, prep.ErrTooFewSamples)
}

func TestPreprocessNoOnset(t *testing.T) {
	high := 5.0
	_, err := Preprocess(&Config{Speed: &high}, reach(t), 0)
	assert.ErrorIs(t, err, prep.ErrNoOnset)
}
