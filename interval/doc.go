// Package interval models the domain of a one-dimensional quadrature: an
// ordered sequence of contiguous, non-overlapping partitions covering
// [start, end].
//
// 🚀 What is an Interval?
//
//	A purely geometric descriptor. It knows nothing about functions or
//	quadrature rules; it only answers "which sub-ranges make up [start, end]?".
//	Construction is the single point of validation:
//	  • New(start, end, n)    — n partitions of equal length (end-start)/n
//	  • FromBreakpoints(xs)   — explicit, possibly non-uniform partitioning
//
// ✨ Key guarantees:
//   - Contiguity: partition[i].End == partition[i+1].Start, exactly — shared
//     breakpoints are computed once and reused, never re-derived.
//   - Ordering: partitions run strictly left to right.
//   - Coverage: the union of partitions equals [start, end]; lengths
//     telescope to end-start.
//   - Immutability: an Interval never changes after construction; accessors
//     return defensive copies.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numquad/interval"
//
//	in, err := interval.New(0, 2, 4)
//	if err != nil {
//	  // ErrInvalidRange, ErrPartitionCount or ErrNonFinite
//	}
//	for _, p := range in.Partitions() {
//	  fmt.Println(p.Start, p.End, p.Length())
//	}
//
// Performance:
//
//   - Construction: O(n) time and memory for n partitions
//   - Accessors: O(1), except Partitions() which copies in O(n)
//
// See examples in example_test.go.
package interval
