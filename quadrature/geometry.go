package quadrature

import "gonum.org/v1/gonum/floats"

// arcSamples is the number of points sampled along each parabolic arc.
const arcSamples = 50

// Bar is an axis-aligned rectangle anchored at y=0: the drawable footprint
// of one Riemann partition. X is the left edge; a negative Height hangs the
// bar below the axis.
type Bar struct {
	X      float64
	Width  float64
	Height float64
}

// Segment is a straight line from (X0, Y0) to (X1, Y1).
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Polyline is an open chain of straight segments through Points, in order.
type Polyline struct {
	Points []Point
}

// Parabola holds the closed-form coefficients of y = A·t² + B·t + C with t
// centered on a partition pair's midpoint, t ∈ [-h, h].
type Parabola struct {
	A, B, C float64
}

// Arc is a parabolic curve piece over one partition pair: the coefficients
// plus the sampled polyline an external renderer draws. Center is the x of
// t = 0 and HalfWidth is h, so the arc spans [Center-h, Center+h].
type Arc struct {
	Parabola
	Center    float64
	HalfWidth float64
	Points    []Point
}

// Region is a closed polygon to be filled, described by its boundary
// Points in order (the closing edge back to Points[0] is implied).
type Region struct {
	Points []Point
}

// Geometry is the language-neutral drawable set a rule emits for the
// external rendering collaborator. It is plain data: producing it mutates
// and persists nothing, and the renderer remains responsible for axes,
// styling and export.
type Geometry struct {
	Bars     []Bar
	Segments []Segment
	Lines    []Polyline
	Arcs     []Arc
	Regions  []Region
	Baseline *Segment
}

// sampleArc evaluates par over arcSamples values of t spanning [-h, h] and
// maps them to screen x around center.
func sampleArc(par Parabola, center, h float64) []Point {
	ts := floats.Span(make([]float64, arcSamples), -h, h)
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = Point{X: center + t, Y: par.A*t*t + par.B*t + par.C}
	}

	return pts
}

// verticals builds one axis-to-curve segment per sampled point.
func verticals(pts []Point) []Segment {
	segs := make([]Segment, len(pts))
	for i, pt := range pts {
		segs[i] = Segment{X0: pt.X, Y0: 0, X1: pt.X, Y1: pt.Y}
	}

	return segs
}

// underCurve closes the polygon between a curve's points and the x-axis by
// walking the curve left to right, then back along the axis.
func underCurve(pts []Point) Region {
	if len(pts) == 0 {
		return Region{}
	}
	boundary := make([]Point, 0, len(pts)+2)
	boundary = append(boundary, pts...)
	boundary = append(boundary,
		Point{X: pts[len(pts)-1].X, Y: 0},
		Point{X: pts[0].X, Y: 0},
	)

	return Region{Points: boundary}
}

// baseline is the y=0 segment spanning [start, end].
func baseline(start, end float64) *Segment {
	return &Segment{X0: start, Y0: 0, X1: end, Y1: 0}
}
