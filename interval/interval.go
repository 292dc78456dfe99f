package interval

import (
	"fmt"
	"math"
)

// New constructs an Interval over [start, end] split into n partitions of
// equal length (end-start)/n.
//
// Breakpoints are computed once as start + (end-start)·i/n and shared by
// neighboring partitions, so contiguity is exact (not merely within a
// floating tolerance) and partition lengths telescope to end-start.
//
// Errors:
//   - ErrNonFinite      — start or end is NaN or infinite.
//   - ErrInvalidRange   — start >= end.
//   - ErrPartitionCount — n < 1.
//   - ErrNotIncreasing  — n is too fine for the floating-point resolution
//     of [start, end], so neighboring breakpoints collapse to equal floats
//     and a zero-length partition would result.
//
// Complexity: O(n) time and memory.
func New(start, end float64, n int) (*Interval, error) {
	if !isFinite(start) || !isFinite(end) {
		return nil, ErrNonFinite
	}
	if start >= end {
		return nil, ErrInvalidRange
	}
	if n < 1 {
		return nil, ErrPartitionCount
	}

	// One shared breakpoint per boundary; the last one is pinned to end so
	// the cover is exact regardless of rounding in the division.
	xs := make([]float64, n+1)
	span := end - start
	for i := 0; i <= n; i++ {
		xs[i] = start + span*float64(i)/float64(n)
	}
	xs[0], xs[n] = start, end

	// Rounding can collapse neighboring breakpoints when the step falls
	// below the float spacing at this magnitude; the Start < End partition
	// invariant holds only if the sequence stayed strictly increasing.
	if err := checkBreakpoints(xs); err != nil {
		return nil, fmt.Errorf("%w: %d partitions exceed the resolution of [%g, %g]", ErrNotIncreasing, n, start, end)
	}

	return fromSorted(xs), nil
}

// FromBreakpoints constructs an Interval from an explicit, strictly
// increasing breakpoint sequence xs; partition i spans [xs[i], xs[i+1]].
// Use it for non-uniform partitioning. The input slice is copied.
//
// Errors:
//   - ErrBreakpointCount — len(xs) < 2.
//   - ErrNonFinite       — any breakpoint is NaN or infinite.
//   - ErrNotIncreasing   — xs is not strictly increasing (this also rules
//     out zero-length partitions).
//
// Complexity: O(n) time and memory.
func FromBreakpoints(xs []float64) (*Interval, error) {
	if len(xs) < 2 {
		return nil, ErrBreakpointCount
	}
	if err := checkBreakpoints(xs); err != nil {
		return nil, err
	}

	// Defensive copy: the caller keeps ownership of xs.
	own := make([]float64, len(xs))
	copy(own, xs)

	return fromSorted(own), nil
}

// checkBreakpoints verifies xs is finite and strictly increasing — the gate
// shared by both constructors.
func checkBreakpoints(xs []float64) error {
	for i, x := range xs {
		if !isFinite(x) {
			return ErrNonFinite
		}
		if i > 0 && xs[i-1] >= x {
			return ErrNotIncreasing
		}
	}

	return nil
}

// fromSorted builds the partition sequence from validated breakpoints.
func fromSorted(xs []float64) *Interval {
	parts := make([]Partition, len(xs)-1)
	for i := range parts {
		parts[i] = Partition{Start: xs[i], End: xs[i+1]}
	}

	return &Interval{start: xs[0], end: xs[len(xs)-1], parts: parts}
}

// Start returns the left bound of the interval. Complexity: O(1).
func (in *Interval) Start() float64 { return in.start }

// End returns the right bound of the interval. Complexity: O(1).
func (in *Interval) End() float64 { return in.end }

// Length returns End() - Start(). Complexity: O(1).
func (in *Interval) Length() float64 { return in.end - in.start }

// Len returns the number of partitions. Complexity: O(1).
func (in *Interval) Len() int { return len(in.parts) }

// At returns the i-th partition, counted from the left.
// Returns ErrIndexRange if i is outside [0, Len()).
// Complexity: O(1).
func (in *Interval) At(i int) (Partition, error) {
	if i < 0 || i >= len(in.parts) {
		return Partition{}, ErrIndexRange
	}

	return in.parts[i], nil
}

// Partitions returns the full ordered partition sequence, left to right,
// as a defensive copy. Complexity: O(n).
func (in *Interval) Partitions() []Partition {
	out := make([]Partition, len(in.parts))
	copy(out, in.parts)

	return out
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
