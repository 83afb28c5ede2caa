package prep

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

func TestResampleLinear(t *testing.T) {
	ts := []float64{0, 0.013, 0.021, 0.035, 0.044, 0.05}
	x := make([]float64, len(ts))
	y := make([]float64, len(ts))
	for i, v := range ts {
		x[i] = 2*v + 1
		y[i] = -v
	}
	grid, cols, err := Resample(ts, 100, x, y)
	require.NoError(t, err)
	require.Len(t, grid, 6)
	require.Len(t, cols, 2)
	want := []float64{0, 0.01, 0.02, 0.03, 0.04, 0.05}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if diff := cmp.Diff(want, grid, approx); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
	for i, g := range grid {
		assert.InDelta(t, 2*g+1, cols[0][i], 1e-9)
		assert.InDelta(t, -g, cols[1][i], 1e-9)
	}
}

func TestResampleAkima(t *testing.T) {
	ts := []float64{0, 1, 2.5, 3, 4, 5.5, 6}
	x := make([]float64, len(ts))
	for i, v := range ts {
		x[i] = 3 - v
	}
	R := Resampler{Rate: 2, New: func() interp.FittablePredictor { return &interp.AkimaSpline{} }}
	grid, cols, err := R.Resample(ts, x)
	require.NoError(t, err)
	assert.Len(t, grid, 13)
	for i, g := range grid {
		assert.InDelta(t, 3-g, cols[0][i], 1e-9)
	}
}

func TestResampleErrors(t *testing.T) {
	_, _, err := Resample([]float64{0, 1}, 10, []float64{0, 1})
	assert.True(t, errors.Is(err, ErrTooFewSamples))
	_, _, err = Resample([]float64{0, 1, 1}, 10, []float64{0, 1, 2})
	assert.Error(t, err)
	_, _, err = Resample([]float64{0, 1, 2}, 10, []float64{0, 1})
	assert.Error(t, err)
	_, _, err = Resample([]float64{0, 1, 2}, 0, []float64{0, 1, 2})
	assert.Error(t, err)
	//shorter than one step of the grid
	_, _, err = Resample([]float64{0, 0.002, 0.005}, 90, []float64{0, 1, 2})
	assert.ErrorIs(t, err, ErrTooFewSamples)
}

func TestLowPassConstant(t *testing.T) {
	x := make([]float64, 50)
	for i := range x {
		x[i] = 0.7
	}
	for _, order := range []int{1, 2, 3, 4} {
		y, err := LowPass(x, 10, 90, order)
		require.NoError(t, err)
		require.Len(t, y, len(x))
		for _, v := range y {
			assert.InDelta(t, 0.7, v, 1e-9)
		}
	}
	assert.Equal(t, 0.7, x[0], "input must not be modified")
}

func TestLowPassFrequencies(t *testing.T) {
	const rate = 90.0
	n := 180
	slow := make([]float64, n)
	fast := make([]float64, n)
	for i := range slow {
		ti := float64(i) / rate
		slow[i] = math.Sin(2 * math.Pi * 1 * ti)
		fast[i] = math.Sin(2 * math.Pi * 40 * ti)
	}
	ys, err := LowPass(slow, 10, rate, 2)
	require.NoError(t, err)
	yf, err := LowPass(fast, 10, rate, 2)
	require.NoError(t, err)
	mid := ys[n/4 : 3*n/4]
	for i, v := range mid {
		assert.InDelta(t, slow[n/4+i], v, 0.02)
	}
	assert.Less(t, floats.Norm(yf[n/4:3*n/4], math.Inf(1)), 0.05)
}

func TestLowPassErrors(t *testing.T) {
	_, err := LowPass([]float64{1, 2, 3}, 50, 90, 2)
	assert.Error(t, err)
	_, err = LowPass([]float64{1, 2, 3}, 10, 90, 0)
	assert.Error(t, err)
	y, err := LowPass(nil, 10, 90, 2)
	require.NoError(t, err)
	assert.Empty(t, y)
	y, err = LowPass([]float64{4}, 10, 90, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4, y[0], 1e-12)
}

func TestVelocity(t *testing.T) {
	x := []float64{1, 1.5, 2, 2.5, 3}
	v := Velocity(0.5, x)
	for _, s := range v {
		assert.InDelta(t, 1.0, s, 1e-12)
	}
	q := Velocity(1, []float64{0, 1, 4, 9})
	assert.Equal(t, []float64{1, 2, 4, 5}, q)
	assert.Equal(t, []float64{0}, Velocity(1, []float64{3}))
}

func TestOnset(t *testing.T) {
	n := 40
	ts := make([]float64, n)
	vx := make([]float64, n)
	vz := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i) * 0.01
		if i >= 10 {
			vx[i] = 0.6
			vz[i] = 0.8
		}
	}
	//a short spike that must be ignored
	vx[3] = 2
	to, err := Onset(ts, vx, vz, OnsetOptions{Speed: 0.6, Window: 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.10, to, 1e-12)

	to, err = Onset(ts, vx, vz, OnsetOptions{Threshold: 0.195, Speed: 0.6, Window: 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.20, to, 1e-12)

	_, err = Onset(ts, vx, vz, OnsetOptions{Speed: 2, Window: 5})
	assert.ErrorIs(t, err, ErrNoOnset)
	_, err = Onset(ts, vx[1:], vz, OnsetOptions{})
	assert.Error(t, err)
}

func TestWindow(t *testing.T) {
	assert.Equal(t, 3, Window(0.5, 0.125))
	assert.Equal(t, 1, Window(0.01, 0.1))
}

func TestNearestIndex(t *testing.T) {
	ts := []float64{0, 0.1, 0.2, 0.3}
	assert.Equal(t, 0, NearestIndex(ts, -1))
	assert.Equal(t, 3, NearestIndex(ts, 7))
	assert.Equal(t, 2, NearestIndex(ts, 0.2))
	assert.Equal(t, 1, NearestIndex(ts, 0.12))
	assert.Equal(t, 2, NearestIndex(ts, 0.18))
	assert.Equal(t, 1, NearestIndex(ts, 0.05))
}
