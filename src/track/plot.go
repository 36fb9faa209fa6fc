package track

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

const (
	// DefaultHeight is the logical track height when none is given.
	DefaultHeight = 60

	// DefaultHoverThreshold is the pixel distance within which a variant
	// counts as "near" the cursor.
	DefaultHoverThreshold = 3
)

// DefaultColor is the marker fill used when no VariantColor func is supplied.
var DefaultColor = color.RGBA{R: 117, G: 117, B: 117, A: 255}

var strokeColor = color.RGBA{A: 255}

// GraphicContext is the drawing surface the plot paints onto. It is the
// subset of go-chart's drawing context used here, so both a real
// *drawing.RasterGraphicContext and a test fake satisfy it.
type GraphicContext interface {
	PathSink
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(width float64)
	SetLineDash(dash []float64, dashOffset float64)
	Fill(paths ...*drawing.Path)
	Stroke(paths ...*drawing.Path)
	FillStroke(paths ...*drawing.Path)
}

// Plot renders an ordered variant list as a strip of ellipses scaled by
// genomic position and allele frequency. The rendered output is a
// deterministic function of (Variants, ScalePosition, Width, Height,
// VariantColor); the plot holds no other state between renders.
type Plot struct {
	// Width is the logical track width in pixels. Required.
	Width int
	// Height is the logical track height in pixels; DefaultHeight when zero.
	Height int
	// ScalePosition maps a genomic coordinate to a pixel X. Required.
	ScalePosition PositionScale
	// Variants is the caller-owned, read-only variant list.
	Variants []variants.Variant
	// VariantColor picks the marker fill per variant; DefaultColor when nil.
	VariantColor func(variants.Variant) color.Color
	// HoverThreshold overrides DefaultHoverThreshold when > 0.
	HoverThreshold float64
}

// VariantX pairs a variant with its computed pixel X for one render pass.
type VariantX struct {
	Variant variants.Variant
	X       float64
}

func (p *Plot) height() int {
	if p.Height <= 0 {
		return DefaultHeight
	}
	return p.Height
}

func (p *Plot) threshold() float64 {
	if p.HoverThreshold > 0 {
		return p.HoverThreshold
	}
	return DefaultHoverThreshold
}

func (p *Plot) coordOf(v variants.Variant) float64 {
	if v.Xpos != 0 {
		return float64(v.Xpos)
	}
	return float64(v.Position)
}

func (p *Plot) colorOf(v variants.Variant) color.Color {
	if p.VariantColor == nil {
		return DefaultColor
	}
	return p.VariantColor(v)
}

// VariantXs computes the pixel X of every variant via ScalePosition,
// preserving input order.
func (p *Plot) VariantXs() []VariantX {
	xs := make([]VariantX, len(p.Variants))
	for i, v := range p.Variants {
		xs[i] = VariantX{Variant: v, X: p.ScalePosition(p.coordOf(v))}
	}
	return xs
}

// Nearby returns the variants whose pixel X lies within threshold of cursorX,
// closest first; ties keep input order. A linear scan is fine at the small N
// this track is used with.
// TODO: binary search over an X-sorted copy if tracks ever carry enough
// variants for pointer-move cost to show up in profiles.
func Nearby(xs []VariantX, cursorX, threshold float64) []variants.Variant {
	type hit struct {
		v variants.Variant
		d float64
	}
	var hits []hit
	for _, vx := range xs {
		d := math.Abs(vx.X - cursorX)
		if d <= threshold {
			hits = append(hits, hit{v: vx.Variant, d: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].d < hits[j].d })
	out := make([]variants.Variant, len(hits))
	for i, h := range hits {
		out[i] = h.v
	}
	return out
}

// NearbyVariants answers a hover query against the current variant set.
func (p *Plot) NearbyVariants(cursorX float64) []variants.Variant {
	return Nearby(p.VariantXs(), cursorX, p.threshold())
}

// Draw computes the pixel X positions once and paints every variant onto gc.
func (p *Plot) Draw(gc GraphicContext) {
	p.DrawXs(gc, p.VariantXs())
}

// DrawXs paints precomputed variant positions onto gc in logical
// coordinates: a filled and thinly stroked ellipse sized by allele
// frequency, plus a dashed outline ellipse highlightPad larger in both radii
// for highlighted variants. Non-finite positions flow into the raster
// primitives unvalidated.
func (p *Plot) DrawXs(gc GraphicContext, xs []VariantX) {
	cy := float64(p.height()) / 2
	for _, vx := range xs {
		rx, ry := Radii(vx.Variant.AlleleFreq)
		gc.SetFillColor(p.colorOf(vx.Variant))
		gc.SetStrokeColor(strokeColor)
		gc.SetLineWidth(0.5)
		EllipsePath(gc, vx.X, cy, rx, ry)
		gc.FillStroke()
		if vx.Variant.IsHighlighted {
			gc.SetLineDash([]float64{3, 3}, 0)
			gc.SetLineWidth(1)
			EllipsePath(gc, vx.X, cy, rx+highlightPad, ry+highlightPad)
			gc.Stroke()
			gc.SetLineDash(nil, 0)
		}
	}
}

// Render clears img and draws the track into it with all coordinates scaled
// by the given device pixel ratio.
func (p *Plot) Render(img *image.RGBA, pixelRatio float64) error {
	if p.Width <= 0 {
		return fmt.Errorf("track: Width is required")
	}
	if p.ScalePosition == nil {
		return fmt.Errorf("track: ScalePosition is required")
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		// No drawing context obtainable; skip painting.
		return nil
	}
	gc.Scale(pixelRatio, pixelRatio)
	p.Draw(gc)
	return nil
}

// RenderImage allocates a backing image sized Width*pixelRatio by
// Height*pixelRatio and renders into it.
func (p *Plot) RenderImage(pixelRatio float64) (*image.RGBA, error) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	pw := int(math.Round(float64(p.Width) * pixelRatio))
	ph := int(math.Round(float64(p.height()) * pixelRatio))
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("track: invalid backing size %dx%d", pw, ph)
	}
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	if err := p.Render(img, pixelRatio); err != nil {
		return nil, err
	}
	return img, nil
}
