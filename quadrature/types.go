// Package quadrature defines core types and sentinel errors
// for the quadrature subpackage of github.com/katalvlaran/numquad.
package quadrature

import "errors"

// Sentinel errors for quadrature construction and sampling.
var (
	// ErrNilFunction indicates an AnnotatedFunc with no callable.
	ErrNilFunction = errors.New("quadrature: function must be non-nil")
	// ErrNilInterval indicates a nil *interval.Interval.
	ErrNilInterval = errors.New("quadrature: interval must be non-nil")
	// ErrNoMethod indicates a zero-value Method; use Left, Right, Midpoint or Random.
	ErrNoMethod = errors.New("quadrature: method must be one of Left, Right, Midpoint or Random")
	// ErrDegeneratePartition indicates a zero- or negative-length partition
	// passed to a Random selection.
	ErrDegeneratePartition = errors.New("quadrature: random selection requires a partition of positive length")
	// ErrOddPartitionCount indicates a Simpson construction over an odd
	// number of partitions; the rule pairs adjacent partitions.
	ErrOddPartitionCount = errors.New("quadrature: Simpson's rule requires an even number of partitions")
	// ErrUnequalPartitions indicates a Simpson construction over partitions
	// whose lengths differ beyond LengthTolerance.
	ErrUnequalPartitions = errors.New("quadrature: Simpson's rule requires partitions of equal length")
	// ErrPointParity indicates a parabola fit over a point count that is
	// not of the form 2k+1.
	ErrPointParity = errors.New("quadrature: parabola fitting requires 2k+1 sample points")
)

// Func is the user-supplied real-valued function ℝ → ℝ under integration.
//
// The library never recovers from a panic raised inside a Func: an
// evaluation failure propagates unchanged to the caller.
type Func func(x float64) float64

// Point is a sampled (x, f(x)) coordinate. Points are ephemeral: they are
// re-derived from the rule's immutable inputs on every request and never
// mutated.
type Point struct {
	X float64
	Y float64
}
