// Package track renders a horizontal strip of genomic variant markers and
// answers nearest-variant hover queries against it. It is purely
// presentational: callers own the variant list, the position-to-pixel scale,
// and the color choice; the package owns marker geometry and hit testing.
package track

// kappa is the standard cubic-Bezier circle approximation constant
// (4*(sqrt(2)-1)/3). Scaled by each radius it gives the control-point
// offsets for a quarter arc.
const kappa = 0.5522848

// PathSink receives the curve segments of a built path. It is a subset of
// the go-chart drawing context, so a *drawing.RasterGraphicContext can be
// passed directly.
type PathSink interface {
	MoveTo(x, y float64)
	CubicCurveTo(cx1, cy1, cx2, cy2, x, y float64)
	Close()
}

// EllipsePath emits a closed four-segment cubic-Bezier approximation of an
// ellipse centered at (cx, cy) with radii (rx, ry). Zero radii collapse to a
// degenerate point-like path.
func EllipsePath(p PathSink, cx, cy, rx, ry float64) {
	ox := rx * kappa
	oy := ry * kappa
	p.MoveTo(cx-rx, cy)
	p.CubicCurveTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicCurveTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.CubicCurveTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicCurveTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.Close()
}
