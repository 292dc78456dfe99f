package quadrature_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numquad/interval"
	"github.com/katalvlaran/numquad/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square is the reference function used across the package tests.
var square = quadrature.NewFunc(func(x float64) float64 { return x * x }, "x^2")

// TestMethod_Deterministic verifies the x picked by Left, Right and Midpoint.
func TestMethod_Deterministic(t *testing.T) {
	p := interval.Partition{Start: 1, End: 3}

	cases := []struct {
		name  string
		m     quadrature.Method
		wantX float64
	}{
		{"left", quadrature.Left(), 1},
		{"right", quadrature.Right(), 3},
		{"midpoint", quadrature.Midpoint(), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt, err := tc.m.Choose(square, p)
			require.NoError(t, err)
			assert.Equal(t, tc.wantX, pt.X, "x must come from the partition bound")
			assert.Equal(t, tc.wantX*tc.wantX, pt.Y, "y must be f(x)")
			assert.Equal(t, tc.name, tc.m.String())
		})
	}
}

// TestMethod_RandomWithinBounds verifies every random x lies in [Start, End)
// under a seeded source. Range membership is the only reproducibility
// guarantee the Random method gives.
func TestMethod_RandomWithinBounds(t *testing.T) {
	m := quadrature.Random(rand.New(rand.NewSource(42)))
	p := interval.Partition{Start: -1.5, End: 0.25}

	for i := 0; i < 1000; i++ {
		pt, err := m.Choose(square, p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, pt.X, p.Start, "draw %d below partition start", i)
		assert.Less(t, pt.X, p.End, "draw %d at or above partition end", i)
		assert.Equal(t, pt.X*pt.X, pt.Y)
	}
}

// TestMethod_RandomSeedReproducible verifies two sources with the same seed
// produce the same draw sequence.
func TestMethod_RandomSeedReproducible(t *testing.T) {
	p := interval.Partition{Start: 0, End: 1}
	m1 := quadrature.Random(rand.New(rand.NewSource(7)))
	m2 := quadrature.Random(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		pt1, err := m1.Choose(square, p)
		require.NoError(t, err)
		pt2, err := m2.Choose(square, p)
		require.NoError(t, err)
		assert.Equal(t, pt1, pt2, "draw %d must match under equal seeds", i)
	}
}

// TestMethod_RandomDegeneratePartition verifies the ErrDegeneratePartition gate.
func TestMethod_RandomDegeneratePartition(t *testing.T) {
	m := quadrature.Random(rand.New(rand.NewSource(1)))

	_, err := m.Choose(square, interval.Partition{Start: 2, End: 2})
	assert.ErrorIs(t, err, quadrature.ErrDegeneratePartition, "zero-length partition must error")

	_, err = m.Choose(square, interval.Partition{Start: 2, End: 1})
	assert.ErrorIs(t, err, quadrature.ErrDegeneratePartition, "inverted partition must error")
}

// TestMethod_RandomNilSource verifies the programmer-error panic on nil rng.
func TestMethod_RandomNilSource(t *testing.T) {
	assert.Panics(t, func() { quadrature.Random(nil) }, "nil *rand.Rand must panic")
}

// TestMethod_ZeroValue verifies the zero Method is rejected, not misused.
func TestMethod_ZeroValue(t *testing.T) {
	var m quadrature.Method

	_, err := m.Choose(square, interval.Partition{Start: 0, End: 1})
	assert.ErrorIs(t, err, quadrature.ErrNoMethod)
	assert.Equal(t, "none", m.String())
}

// TestMethod_EvaluationPanicPropagates verifies a panicking Func is not
// recovered or rewrapped by Choose.
func TestMethod_EvaluationPanicPropagates(t *testing.T) {
	boom := quadrature.NewFunc(func(x float64) float64 { panic("domain error") }, "")

	assert.PanicsWithValue(t, "domain error", func() {
		_, _ = quadrature.Left().Choose(boom, interval.Partition{Start: 0, End: 1})
	})
}
