package quadrature

import "github.com/katalvlaran/numquad/interval"

// Quadrature is the contract shared by every rule in the family.
//
// All three operations are pure functions of the immutable construction
// triple (AnnotatedFunc, *interval.Interval, Method): they re-derive their
// output on every call and never mutate or persist anything. Calling any of
// them repeatedly on the same instance yields identical results, except
// under the Random method, where Points and Calc are random variables of
// the injected source.
type Quadrature interface {
	// Points returns the sampled coordinates backing the approximation:
	// one per partition for Riemann, one per partition plus the interval
	// end (n+1 total) for Trapezoid and Simpson.
	Points() ([]Point, error)

	// Calc returns the approximated value of the definite integral.
	Calc() (float64, error)

	// Geometry returns the drawable primitives of the approximation for an
	// external renderer.
	Geometry() (Geometry, error)
}

// Compile-time checks: every rule in the family satisfies the contract.
var (
	_ Quadrature = (*Riemann)(nil)
	_ Quadrature = (*Trapezoid)(nil)
	_ Quadrature = (*Simpson)(nil)
)

// base carries the immutable (function, interval, method) triple shared by
// the concrete rules and the sampling helpers over it.
type base struct {
	fn AnnotatedFunc
	in *interval.Interval
	m  Method
}

// samples picks one Point per partition, left to right, via the method.
// Complexity: O(n) with n = partition count.
func (b *base) samples() ([]Point, error) {
	parts := b.in.Partitions()
	pts := make([]Point, 0, len(parts))
	for _, p := range parts {
		pt, err := b.m.Choose(b.fn, p)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}

	return pts, nil
}

// samplesClosed is samples plus one trailing Point at the interval end,
// giving the n+1 closed polyline points used by Trapezoid and Simpson.
func (b *base) samplesClosed() ([]Point, error) {
	pts, err := b.samples()
	if err != nil {
		return nil, err
	}
	x := b.in.End()

	return append(pts, Point{X: x, Y: b.fn.Eval(x)}), nil
}

// Fn returns the annotated function under integration.
func (b *base) Fn() AnnotatedFunc { return b.fn }

// Interval returns the integration domain.
func (b *base) Interval() *interval.Interval { return b.in }

// Method returns the point-selection strategy in use.
func (b *base) Method() Method { return b.m }

// validatePair gates the (function, interval) arguments common to all rules.
func validatePair(fn AnnotatedFunc, in *interval.Interval) error {
	if !fn.valid() {
		return ErrNilFunction
	}
	if in == nil {
		return ErrNilInterval
	}

	return nil
}

// validateTriple additionally gates the configurable method of a Riemann sum.
func validateTriple(fn AnnotatedFunc, in *interval.Interval, m Method) error {
	if err := validatePair(fn, in); err != nil {
		return err
	}
	if !m.valid() {
		return ErrNoMethod
	}

	return nil
}
