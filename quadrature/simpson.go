package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/numquad/interval"
)

// LengthTolerance is the absolute tolerance used to decide whether two
// partition lengths count as equal when constructing a Simpson rule.
//
// Every length is compared against the first partition's length. Note the
// comparison is absolute, not relative, so it is not scale-invariant: on a
// domain much smaller than the tolerance every mesh passes, and on a very
// large domain meshes that are uniform for all practical purposes may fail.
// Rescale the domain if that bites.
const LengthTolerance = 1e-3

// Simpson approximates the integral with composite Simpson's rule: adjacent
// equal-width partitions are paired and a parabola is fitted through the
// three sampled points of each pair. Exact for polynomials up to degree 3.
//
// Construction is the validation gate: an even partition count and uniform
// partition lengths (within LengthTolerance) are required, and a rule that
// violates either is never instantiable. The point-selection method is
// pinned to Left, as with Trapezoid.
type Simpson struct {
	base
}

// NewSimpson constructs composite Simpson's rule for fn over in.
//
// Errors:
//   - ErrNilFunction      — fn carries no callable.
//   - ErrNilInterval      — in is nil.
//   - ErrOddPartitionCount — in.Len() is odd; pairing needs an even count.
//   - ErrUnequalPartitions — some partition length differs from the first
//     partition's length by more than LengthTolerance.
//
// Complexity: O(n) for the uniformity scan.
func NewSimpson(fn AnnotatedFunc, in *interval.Interval) (*Simpson, error) {
	if err := validatePair(fn, in); err != nil {
		return nil, err
	}
	if in.Len()%2 != 0 {
		return nil, fmt.Errorf("%w: got %d partitions", ErrOddPartitionCount, in.Len())
	}

	parts := in.Partitions()
	h := parts[0].Length()
	for i, p := range parts[1:] {
		if !scalar.EqualWithinAbs(p.Length(), h, LengthTolerance) {
			return nil, fmt.Errorf("%w: partition %d has length %g, first has %g (tolerance %g)",
				ErrUnequalPartitions, i+1, p.Length(), h, LengthTolerance)
		}
	}

	return &Simpson{base{fn: fn, in: in, m: Left()}}, nil
}

// Points returns one Point per partition's left bound plus one at the
// interval end — n+1 points, the same closed shape as Trapezoid.
// Complexity: O(n).
func (s *Simpson) Points() ([]Point, error) {
	return s.samplesClosed()
}

// Calc returns h/3 · [y₀ + yₙ + 4·Σ(odd-indexed y) + 2·Σ(even-indexed
// interior y)] over the n+1 sampled points, where h is the common partition
// length.
//
// The weighted sum is accumulated first and multiplied by h/3 once at the
// end; a single common h is exactly the equal-partition assumption the
// constructor enforces.
// Complexity: O(n).
func (s *Simpson) Calc() (float64, error) {
	pts, err := s.samplesClosed()
	if err != nil {
		return 0, err
	}

	acc := pts[0].Y + pts[len(pts)-1].Y
	for i := 1; i < len(pts)-1; i += 2 {
		acc += 4 * pts[i].Y
	}
	for i := 2; i < len(pts)-1; i += 2 {
		acc += 2 * pts[i].Y
	}

	h, err := s.stepLength()
	if err != nil {
		return 0, err
	}

	return acc * h / 3, nil
}

// Parabolas returns, for every consecutive pair of partitions, the
// closed-form coefficients of the parabola y = A·t² + B·t + C through the
// pair's three sampled points (y0, y1, y2), with t centered on the pair's
// midpoint and t ∈ [-h, h]:
//
//	A = (y0 - 2·y1 + y2) / (2h²)
//	B = (y2 - y0) / (2h)
//	C = y1
//
// This is an exact algebraic solve, not a numerical fit. The output length
// is n/2 for n partitions.
//
// Returns ErrPointParity if the sample count is not of the form 2k+1. This
// gate is a defensive invariant: the constructor already enforces an even
// partition count, so every constructed Simpson samples 2k+1 points and the
// error cannot surface through the public API.
// Complexity: O(n).
func (s *Simpson) Parabolas() ([]Parabola, error) {
	pts, err := s.samplesClosed()
	if err != nil {
		return nil, err
	}
	if len(pts) < 3 || len(pts)%2 != 1 {
		return nil, fmt.Errorf("%w: got %d points", ErrPointParity, len(pts))
	}

	h, err := s.stepLength()
	if err != nil {
		return nil, err
	}

	out := make([]Parabola, 0, (len(pts)-1)/2)
	for i := 0; i+2 < len(pts); i += 2 {
		y0, y1, y2 := pts[i].Y, pts[i+1].Y, pts[i+2].Y
		out = append(out, Parabola{
			A: (y0 - 2*y1 + y2) / (2 * h * h),
			B: (y2 - y0) / (2 * h),
			C: y1,
		})
	}

	return out, nil
}

// Geometry returns a vertical segment from y=0 at every sampled x, one
// sampled parabolic Arc per partition pair with the filled region under it,
// and the y=0 baseline.
// Complexity: O(n · arcSamples).
func (s *Simpson) Geometry() (Geometry, error) {
	pts, err := s.samplesClosed()
	if err != nil {
		return Geometry{}, err
	}
	pars, err := s.Parabolas()
	if err != nil {
		return Geometry{}, err
	}
	h, err := s.stepLength()
	if err != nil {
		return Geometry{}, err
	}

	arcs := make([]Arc, len(pars))
	regions := make([]Region, len(pars))
	for i, par := range pars {
		center := pts[2*i+1].X // middle sample of the pair is t=0
		sampled := sampleArc(par, center, h)
		arcs[i] = Arc{Parabola: par, Center: center, HalfWidth: h, Points: sampled}
		regions[i] = underCurve(sampled)
	}

	return Geometry{
		Segments: verticals(pts),
		Arcs:     arcs,
		Regions:  regions,
		Baseline: baseline(s.in.Start(), s.in.End()),
	}, nil
}

// stepLength returns the common partition length h.
func (s *Simpson) stepLength() (float64, error) {
	first, err := s.in.At(0)
	if err != nil {
		return 0, err
	}

	return first.Length(), nil
}
