package quadrature

import "github.com/katalvlaran/numquad/interval"

// Trapezoid approximates the integral by one trapezoid per partition,
// through both partition endpoints. Exact for linear functions, and —
// unlike Simpson — valid for non-uniform partition lengths.
//
// The point-selection method is pinned to Left: evaluating both endpoints
// of every partition is what defines the rule, so it is not configurable.
type Trapezoid struct {
	base
}

// NewTrapezoid constructs the trapezoid rule for fn over in.
//
// Errors:
//   - ErrNilFunction — fn carries no callable.
//   - ErrNilInterval — in is nil.
//
// Complexity: O(1).
func NewTrapezoid(fn AnnotatedFunc, in *interval.Interval) (*Trapezoid, error) {
	if err := validatePair(fn, in); err != nil {
		return nil, err
	}

	return &Trapezoid{base{fn: fn, in: in, m: Left()}}, nil
}

// Points returns one Point per partition's left bound plus one at the
// interval end — n+1 points forming a continuous polyline across all
// partition boundaries.
// Complexity: O(n).
func (tr *Trapezoid) Points() ([]Point, error) {
	return tr.samplesClosed()
}

// Calc returns Σ (f(p.Start)+f(p.End))/2 · p.Length() over all partitions.
// Complexity: O(n), two evaluations of f per partition.
func (tr *Trapezoid) Calc() (float64, error) {
	var total float64
	for _, p := range tr.in.Partitions() {
		a, b := tr.fn.Eval(p.Start), tr.fn.Eval(p.End)
		total += (a + b) / 2 * p.Length()
	}

	return total, nil
}

// Geometry returns a vertical segment from y=0 at each of the n+1 sampled
// xs, the connecting polyline through all points, the filled region between
// that polyline and the x-axis, and the y=0 baseline.
// Complexity: O(n).
func (tr *Trapezoid) Geometry() (Geometry, error) {
	pts, err := tr.samplesClosed()
	if err != nil {
		return Geometry{}, err
	}

	return Geometry{
		Segments: verticals(pts),
		Lines:    []Polyline{{Points: pts}},
		Regions:  []Region{underCurve(pts)},
		Baseline: baseline(tr.in.Start(), tr.in.End()),
	}, nil
}
