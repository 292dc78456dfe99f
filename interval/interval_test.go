package interval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numquad/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidArguments verifies the eager construction gate for New.
func TestNew_InvalidArguments(t *testing.T) {
	// Inverted and empty ranges.
	_, err := interval.New(2, 0, 4)
	assert.ErrorIs(t, err, interval.ErrInvalidRange, "start > end must error")
	_, err = interval.New(1, 1, 4)
	assert.ErrorIs(t, err, interval.ErrInvalidRange, "start == end must error")

	// Non-positive partition counts.
	_, err = interval.New(0, 1, 0)
	assert.ErrorIs(t, err, interval.ErrPartitionCount, "n == 0 must error")
	_, err = interval.New(0, 1, -3)
	assert.ErrorIs(t, err, interval.ErrPartitionCount, "n < 0 must error")

	// Non-finite bounds.
	_, err = interval.New(math.NaN(), 1, 2)
	assert.ErrorIs(t, err, interval.ErrNonFinite, "NaN start must error")
	_, err = interval.New(0, math.Inf(1), 2)
	assert.ErrorIs(t, err, interval.ErrNonFinite, "infinite end must error")
}

// TestNew_UniformPartitions verifies count, bounds and equal lengths.
func TestNew_UniformPartitions(t *testing.T) {
	in, err := interval.New(0, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, 0.0, in.Start())
	assert.Equal(t, 2.0, in.End())
	assert.Equal(t, 2.0, in.Length())
	assert.Equal(t, 4, in.Len())

	for _, p := range in.Partitions() {
		assert.InDelta(t, 0.5, p.Length(), 1e-12, "partitions must share length (end-start)/n")
	}
}

// TestNew_BreakpointCollapse verifies the constructor rejects meshes finer
// than the floating-point resolution of the domain: at magnitude 1e16 the
// float spacing is 2, so a step of 0.5 collapses neighboring breakpoints
// and would otherwise produce zero-length partitions.
func TestNew_BreakpointCollapse(t *testing.T) {
	_, err := interval.New(1e16, 1e16+4, 8)
	assert.ErrorIs(t, err, interval.ErrNotIncreasing, "sub-resolution step must error")

	// A coarse mesh at the same magnitude still constructs, and every
	// partition keeps the Start < End invariant.
	in, err := interval.New(1e16, 1e16+4, 2)
	require.NoError(t, err)
	for i, p := range in.Partitions() {
		assert.Less(t, p.Start, p.End, "partition %d must have positive length", i)
	}
}

// TestInterval_Invariants checks contiguity, ordering and exact coverage of
// the partition sequence for a range of constructions.
func TestInterval_Invariants(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		n          int
	}{
		{"unit/one", 0, 1, 1},
		{"unit/seven", 0, 1, 7},
		{"negative/span", -3.5, 2.25, 10},
		{"tiny/span", 0, 1e-6, 13},
		{"offset/large", 100, 1000, 32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := interval.New(tc.start, tc.end, tc.n)
			require.NoError(t, err)

			parts := in.Partitions()
			require.Len(t, parts, tc.n)

			// Endpoints are pinned exactly.
			assert.Equal(t, tc.start, parts[0].Start)
			assert.Equal(t, tc.end, parts[tc.n-1].End)

			var sum float64
			for i, p := range parts {
				assert.Less(t, p.Start, p.End, "partition %d must be ordered", i)
				if i > 0 {
					// Contiguity is exact: neighboring partitions share one breakpoint.
					assert.Equal(t, parts[i-1].End, p.Start, "partition %d must touch its left neighbor", i)
				}
				sum += p.Length()
			}
			assert.InDelta(t, tc.end-tc.start, sum, 1e-9, "lengths must sum to the total span")
		})
	}
}

// TestFromBreakpoints covers explicit non-uniform construction and its gate.
func TestFromBreakpoints(t *testing.T) {
	in, err := interval.FromBreakpoints([]float64{0, 0.5, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 3, in.Len())
	assert.Equal(t, 0.0, in.Start())
	assert.Equal(t, 3.0, in.End())

	p, err := in.At(1)
	require.NoError(t, err)
	assert.Equal(t, interval.Partition{Start: 0.5, End: 2}, p)

	// Too few breakpoints.
	_, err = interval.FromBreakpoints([]float64{1})
	assert.ErrorIs(t, err, interval.ErrBreakpointCount)
	_, err = interval.FromBreakpoints(nil)
	assert.ErrorIs(t, err, interval.ErrBreakpointCount)

	// Not strictly increasing: duplicates and inversions both fail.
	_, err = interval.FromBreakpoints([]float64{0, 1, 1, 2})
	assert.ErrorIs(t, err, interval.ErrNotIncreasing)
	_, err = interval.FromBreakpoints([]float64{0, 2, 1})
	assert.ErrorIs(t, err, interval.ErrNotIncreasing)

	// Non-finite breakpoint.
	_, err = interval.FromBreakpoints([]float64{0, math.NaN(), 2})
	assert.ErrorIs(t, err, interval.ErrNonFinite)
}

// TestFromBreakpoints_InputOwnership verifies the constructor copies its input.
func TestFromBreakpoints_InputOwnership(t *testing.T) {
	xs := []float64{0, 1, 2}
	in, err := interval.FromBreakpoints(xs)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the interval.
	xs[1] = 42
	p, err := in.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.End, "interval must own its breakpoints")
}

// TestAt_IndexRange verifies indexed access bounds.
func TestAt_IndexRange(t *testing.T) {
	in, err := interval.New(0, 1, 2)
	require.NoError(t, err)

	_, err = in.At(-1)
	assert.ErrorIs(t, err, interval.ErrIndexRange)
	_, err = in.At(2)
	assert.ErrorIs(t, err, interval.ErrIndexRange)

	first, err := in.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, first.Start)
}

// TestPartitions_DefensiveCopy verifies accessor immutability.
func TestPartitions_DefensiveCopy(t *testing.T) {
	in, err := interval.New(0, 1, 2)
	require.NoError(t, err)

	got := in.Partitions()
	got[0].End = 99

	again := in.Partitions()
	assert.Equal(t, 0.5, again[0].End, "Partitions must return a copy")
}
