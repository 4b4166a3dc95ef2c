package easing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurves_Endpoints(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			f := k.Curve()
			assert.InDelta(t, 0.0, f(0), 1e-9)
			assert.InDelta(t, 1.0, f(1), 1e-9)
		})
	}
}

func TestCurves_Midpoint(t *testing.T) {
	tests := []struct {
		kind Kind
		want float64
	}{
		{Accelerate, 0.25},
		{Decelerate, 0.75},
		{AccelerateDecelerate, 0.5},
		{Anticipate, -0.125},
		{AnticipateOvershoot, 0.5},
		{Linear, 0.5},
		{Overshoot, 1.125},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.kind.Curve()(0.5), 1e-9)
		})
	}
}

func TestCurves_MatchPlatformFormulas(t *testing.T) {
	tests := []struct {
		kind Kind
		want func(float64) float64
	}{
		{Accelerate, func(x float64) float64 { return x * x }},
		{Decelerate, func(x float64) float64 { return 1 - (1-x)*(1-x) }},
		{AccelerateDecelerate, func(x float64) float64 { return math.Cos((x+1)*math.Pi)/2 + 0.5 }},
		{Linear, func(x float64) float64 { return x }},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := tt.kind.Curve()
			for i := 0; i <= 64; i++ {
				x := float64(i) / 64
				assert.InDelta(t, tt.want(x), f(x), 1e-6, "t=%v", x)
			}
		})
	}
}

func TestCurves_Monotonic(t *testing.T) {
	for _, k := range []Kind{Accelerate, Decelerate, AccelerateDecelerate, Linear} {
		f := k.Curve()
		prev := f(0)
		for i := 1; i <= 100; i++ {
			v := f(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "%s not monotonic at step %d", k, i)
			prev = v
		}
	}
}

func TestKind_UnknownFallsBack(t *testing.T) {
	want := AccelerateDecelerate.Curve()
	for _, k := range []Kind{-1, 7, 42} {
		f := k.Curve()
		for _, x := range []float64{0, 0.2, 0.5, 0.9, 1} {
			assert.InDelta(t, want(x), f(x), 1e-12)
		}
		assert.False(t, k.Valid())
	}
	assert.Equal(t, "kind(9)", Kind(9).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "accelerate", want: Accelerate},
		{in: "0", want: Accelerate},
		{in: " Overshoot ", want: Overshoot},
		{in: "accelerate_decelerate", want: AccelerateDecelerate},
		{in: "anticipate-overshoot", want: AnticipateOvershoot},
		{in: "5", want: Linear},
		{in: "7", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "bounce", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKinds(t *testing.T) {
	ks := Kinds()
	require.Len(t, ks, 7)
	for i, k := range ks {
		assert.Equal(t, Kind(i), k)
		got, err := Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.3))
	assert.Equal(t, 0.4, Clamp01(0.4))
	assert.Equal(t, 1.0, Clamp01(1.2))
}
