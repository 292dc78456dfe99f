// Package interval defines core types and sentinel errors
// for the interval subpackage of github.com/katalvlaran/numquad.
package interval

import "errors"

// Sentinel errors for interval construction and access.
var (
	// ErrInvalidRange indicates start >= end.
	ErrInvalidRange = errors.New("interval: start must be strictly less than end")
	// ErrPartitionCount indicates a requested partition count below 1.
	ErrPartitionCount = errors.New("interval: partition count must be at least 1")
	// ErrNonFinite indicates a NaN or infinite bound or breakpoint.
	ErrNonFinite = errors.New("interval: bounds and breakpoints must be finite")
	// ErrBreakpointCount indicates fewer than two breakpoints.
	ErrBreakpointCount = errors.New("interval: at least two breakpoints are required")
	// ErrNotIncreasing indicates breakpoints that are not strictly increasing.
	ErrNotIncreasing = errors.New("interval: breakpoints must be strictly increasing")
	// ErrIndexRange indicates a partition index outside [0, Len()).
	ErrIndexRange = errors.New("interval: partition index out of range")
)

// Partition is one contiguous sub-range [Start, End] of an Interval.
// A Partition produced by this package always has Start < End.
type Partition struct {
	Start float64 // left bound
	End   float64 // right bound
}

// Length returns End - Start.
// Complexity: O(1).
func (p Partition) Length() float64 {
	return p.End - p.Start
}

// Interval is an ordered sequence of contiguous partitions covering
// [start, end]. It is immutable once built; construct it with New or
// FromBreakpoints only.
type Interval struct {
	start float64
	end   float64
	parts []Partition
}
