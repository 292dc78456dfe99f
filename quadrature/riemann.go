package quadrature

import "github.com/katalvlaran/numquad/interval"

// Riemann approximates the integral by one rectangle per partition, with
// the rectangle height sampled where the configured Method points.
//
// Accuracy scales with partition width; under the Random method the sum is
// itself a random variable of the injected source, so seed it for
// reproducible results.
type Riemann struct {
	base
}

// NewRiemann constructs a Riemann sum of fn over in using method m.
//
// Errors:
//   - ErrNilFunction — fn carries no callable.
//   - ErrNilInterval — in is nil.
//   - ErrNoMethod    — m is the zero value.
//
// Complexity: O(1); all work is deferred to Points/Calc/Geometry.
func NewRiemann(fn AnnotatedFunc, in *interval.Interval, m Method) (*Riemann, error) {
	if err := validateTriple(fn, in, m); err != nil {
		return nil, err
	}

	return &Riemann{base{fn: fn, in: in, m: m}}, nil
}

// Points returns exactly one sampled Point per partition, left to right.
// Complexity: O(n).
func (r *Riemann) Points() ([]Point, error) {
	return r.samples()
}

// Calc returns Σ partition.Length() · point.Y over all partitions.
// Complexity: O(n).
func (r *Riemann) Calc() (float64, error) {
	pts, err := r.samples()
	if err != nil {
		return 0, err
	}

	var total float64
	for i, p := range r.in.Partitions() {
		total += p.Length() * pts[i].Y
	}

	return total, nil
}

// Geometry returns one Bar per partition: width = partition length, height
// = sampled y, anchored at y=0.
// Complexity: O(n).
func (r *Riemann) Geometry() (Geometry, error) {
	pts, err := r.samples()
	if err != nil {
		return Geometry{}, err
	}

	parts := r.in.Partitions()
	bars := make([]Bar, len(parts))
	for i, p := range parts {
		bars[i] = Bar{X: p.Start, Width: p.Length(), Height: pts[i].Y}
	}

	return Geometry{Bars: bars}, nil
}
