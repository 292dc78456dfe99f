package quadrature

import (
	"math/rand"

	"github.com/katalvlaran/numquad/interval"
)

// Method is the point-selection strategy of a Riemann sum: given a
// partition, it picks the x-coordinate that represents the partition in the
// sum. A Method is a stateless value; the deterministic constructors (Left,
// Right, Midpoint) always pick the same x for the same partition, while
// Random draws uniformly from [Start, End) using an injected source.
//
// The zero value is not a usable Method; Choose on it returns ErrNoMethod.
type Method struct {
	name string
	pick func(p interval.Partition) (float64, error)
}

// Left selects the left bound of each partition.
// Complexity: O(1). Never errors.
func Left() Method {
	return Method{
		name: "left",
		pick: func(p interval.Partition) (float64, error) { return p.Start, nil },
	}
}

// Right selects the right bound of each partition.
// Complexity: O(1). Never errors.
func Right() Method {
	return Method{
		name: "right",
		pick: func(p interval.Partition) (float64, error) { return p.End, nil },
	}
}

// Midpoint selects the center of each partition.
// Complexity: O(1). Never errors.
func Midpoint() Method {
	return Method{
		name: "midpoint",
		pick: func(p interval.Partition) (float64, error) { return (p.Start + p.End) / 2, nil },
	}
}

// Random selects x uniformly from [Start, End) of each partition using rng.
// This is the only source of non-determinism in the library; seed rng for
// reproducible sums. A shared *rand.Rand is not safe for concurrent use —
// inject one per goroutine.
//
// Panics if rng is nil (programmer error in configuration: the library
// never falls back to an implicit global generator).
// Choose returns ErrDegeneratePartition for a partition of non-positive length.
func Random(rng *rand.Rand) Method {
	if rng == nil {
		panic("quadrature: Random requires a non-nil *rand.Rand")
	}

	return Method{
		name: "random",
		pick: func(p interval.Partition) (float64, error) {
			length := p.Length()
			if length <= 0 {
				return 0, ErrDegeneratePartition
			}
			// Float64 returns [0,1), so x stays in [Start, End).
			return p.Start + rng.Float64()*length, nil
		},
	}
}

// Choose picks the representative x of p per the strategy and evaluates f
// there, returning the sampled Point.
//
// Errors:
//   - ErrNoMethod            — m is the zero value.
//   - ErrDegeneratePartition — Random over a non-positive-length partition.
//
// A panic raised by f propagates unchanged.
// Complexity: O(1) plus one evaluation of f.
func (m Method) Choose(f AnnotatedFunc, p interval.Partition) (Point, error) {
	if m.pick == nil {
		return Point{}, ErrNoMethod
	}
	x, err := m.pick(p)
	if err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: f.Eval(x)}, nil
}

// String returns the strategy name: "left", "right", "midpoint" or "random".
func (m Method) String() string {
	if m.name == "" {
		return "none"
	}

	return m.name
}

// valid reports whether m carries a selection strategy.
func (m Method) valid() bool { return m.pick != nil }
