// Package numquad is your in-memory toolbox for approximating definite
// integrals of one-dimensional real functions with classical quadrature
// rules — and for extracting the sample points and drawable shapes behind
// every approximation.
//
// 🚀 What is numquad?
//
//	A small, deterministic library that brings together:
//		• Interval & Partition: an ordered cover of [start, end], uniform or
//		  built from explicit breakpoints
//		• Point-selection methods: Left, Right, Midpoint and seeded Random
//		• Riemann sums: one rectangle per partition
//		• Trapezoid rule: exact for linear functions
//		• Simpson's rule: parabola pairs, exact up to cubics
//		• Geometry output: bars, segments, polylines, parabolic arcs and
//		  filled regions, ready for any external renderer
//
// ✨ Why choose numquad?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – eager validation, immutable inputs, pure methods
//   - Deterministic – randomness only via an injected, seedable *rand.Rand
//   - Renderer-agnostic – emits plain geometric primitives, no drawing deps
//
// Under the hood, everything is organized under two subpackages:
//
//	interval/   — Partition and Interval: the geometric descriptor of the domain
//	quadrature/ — AnnotatedFunc, Method and the rule family {Riemann, Trapezoid, Simpson}
//
// Quick ASCII example (left Riemann sum of y = x² on [0, 2], n = 4):
//
//	y
//	│           ┌─┐
//	│        ┌─┐│ │
//	│     ┌─┐│ ││ │
//	│  ┌─┐│ ││ ││ │
//	└──┴─┴┴─┴┴─┴┴─┴── x
//	   0         2
//
// Every rule exposes Points(), Calc() and Geometry(); Simpson additionally
// exposes Parabolas() with the closed-form arc coefficients.
//
// Dive into the examples/ directory and the per-package example_test.go
// files for full walkthroughs.
//
//	go get github.com/katalvlaran/numquad
package numquad
