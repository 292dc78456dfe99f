package quadrature

import "fmt"

// AnnotatedFunc pairs a Func with an optional human-readable label such as
// "x^2". It is an immutable value object: copy it freely, compare labels,
// evaluate anywhere.
type AnnotatedFunc struct {
	fn    Func
	label string
}

// NewFunc wraps fn with an optional display label. An empty label is valid;
// String() then falls back to the generic "y = f(x)".
// Complexity: O(1).
func NewFunc(fn Func, label string) AnnotatedFunc {
	return AnnotatedFunc{fn: fn, label: label}
}

// Eval applies the wrapped function to a single x.
// A panic inside the wrapped function propagates unchanged.
// Complexity: O(1) plus the cost of fn.
func (af AnnotatedFunc) Eval(x float64) float64 {
	return af.fn(x)
}

// Sample applies the wrapped function element-wise over xs and returns the
// resulting ys. This is the vectorized boundary used by renderers to sample
// the background curve densely; pair it with gonum's floats.Span.
// Complexity: O(len(xs)).
func (af AnnotatedFunc) Sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = af.fn(x)
	}

	return ys
}

// Label returns the display label, which may be empty.
func (af AnnotatedFunc) Label() string { return af.label }

// String renders the function as an equation, e.g. "y = x^2", falling back
// to "y = f(x)" when no label was given.
func (af AnnotatedFunc) String() string {
	if af.label == "" {
		return "y = f(x)"
	}

	return fmt.Sprintf("y = %s", af.label)
}

// valid reports whether a callable was supplied.
func (af AnnotatedFunc) valid() bool { return af.fn != nil }
