// Package quadrature approximates definite integrals of one-dimensional
// real functions with classical rules — Riemann sums, the trapezoid rule
// and Simpson's rule — and exposes the sample points and drawable geometry
// behind each approximation.
//
// 🚀 What is quadrature?
//
//	Numerical approximation of ∫f(x)dx over [start, end] by partitioning
//	the interval and summing simple areas:
//	  • Riemann   — one rectangle per partition; the Method picks where
//	    each rectangle's height is sampled (Left, Right, Midpoint, Random)
//	  • Trapezoid — one trapezoid per partition through both endpoints;
//	    exact for linear functions
//	  • Simpson   — one parabola per pair of equal-width partitions;
//	    exact for polynomials up to degree three
//
// ✨ Key features:
//   - a single Quadrature contract: Points(), Calc(), Geometry()
//   - eager, fail-fast construction — an invalid rule is never instantiable
//     (Simpson rejects odd partition counts and unequal partition lengths)
//   - pure, re-derived outputs: nothing is cached, nothing is mutated
//   - randomness only through an injected *rand.Rand (Random method)
//   - renderer-agnostic Geometry: bars, segments, polylines, parabolic
//     arcs and filled regions as plain data
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/numquad/interval"
//	  "github.com/katalvlaran/numquad/quadrature"
//	)
//
//	in, _ := interval.New(0, 2, 4)
//	f := quadrature.NewFunc(func(x float64) float64 { return x * x }, "x^2")
//
//	r, err := quadrature.NewRiemann(f, in, quadrature.Midpoint())
//	if err != nil {
//	  // ErrNilFunction, ErrNilInterval or ErrNoMethod
//	}
//	area, _ := r.Calc()
//	fmt.Println("≈", area)
//
// Error-handling policy:
//
//   - All argument validation happens at construction time and returns the
//     sentinel errors declared in types.go; use errors.Is to test them.
//   - Panics raised by the user-supplied Func propagate unchanged — the
//     package never recovers from or rewraps an evaluation failure; supply
//     a total function over the interval or recover at the call site.
//
// Concurrency:
//
//	All operations are pure computations over immutable inputs; distinct
//	instances may be used from multiple goroutines without synchronization.
//	The one exception is a *rand.Rand shared between Random methods — it is
//	not safe for concurrent use; inject one source per goroutine.
//
// Performance: every operation is O(n) in the partition count.
//
// See examples in example_test.go and runnable demos under examples/.
package quadrature
