package track

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

func varAt(id string, pos int64, af float64) variants.Variant {
	return variants.Variant{VariantID: id, Contig: "1", Position: pos, Xpos: variants.ComputeXpos("1", pos), AlleleFreq: af}
}

// identityPlot maps genomic offset 1:1 onto pixels so test positions are
// pixel positions.
func identityPlot(vs ...variants.Variant) *Plot {
	return &Plot{
		Width:         100,
		Height:        60,
		ScalePosition: LinearScale(1_000_000_000, 1_000_000_100, 100),
		Variants:      vs,
	}
}

func TestVariantXsPreservesOrder(t *testing.T) {
	p := identityPlot(varAt("b", 12, 0), varAt("a", 10, 0), varAt("c", 50, 0))
	xs := p.VariantXs()
	if len(xs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(xs))
	}
	if xs[0].X != 12 || xs[1].X != 10 || xs[2].X != 50 {
		t.Fatalf("unexpected xs: %+v", xs)
	}
	if xs[0].Variant.VariantID != "b" {
		t.Fatalf("input order not preserved: %+v", xs)
	}
}

func TestNearbyFiltersSortsAndExcludes(t *testing.T) {
	p := identityPlot(varAt("v10", 10, 0), varAt("v12", 12, 0), varAt("v50", 50, 0))
	got := p.NearbyVariants(11)
	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d: %+v", len(got), got)
	}
	// Both at distance 1; tie keeps input order.
	if got[0].VariantID != "v10" || got[1].VariantID != "v12" {
		t.Fatalf("unexpected order: %q, %q", got[0].VariantID, got[1].VariantID)
	}

	got = p.NearbyVariants(13)
	if len(got) != 2 || got[0].VariantID != "v12" || got[1].VariantID != "v10" {
		t.Fatalf("expected closest-first [v12 v10], got %+v", got)
	}

	if got := p.NearbyVariants(30); len(got) != 0 {
		t.Fatalf("expected no hits at x=30, got %+v", got)
	}

	// Boundary: distance exactly equal to the threshold is included.
	if got := p.NearbyVariants(7); len(got) != 1 || got[0].VariantID != "v10" {
		t.Fatalf("threshold boundary not inclusive: %+v", got)
	}
}

func TestNearbyIdempotent(t *testing.T) {
	p := identityPlot(varAt("v10", 10, 0), varAt("v12", 12, 0.0001), varAt("v50", 50, 0))
	a := p.NearbyVariants(11)
	b := p.NearbyVariants(11)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("hover query not idempotent: %+v vs %+v", a, b)
	}
}

func TestNearbyCustomThreshold(t *testing.T) {
	p := identityPlot(varAt("v10", 10, 0), varAt("v50", 50, 0))
	p.HoverThreshold = 45
	if got := p.NearbyVariants(11); len(got) != 2 {
		t.Fatalf("expected both variants within threshold 45, got %+v", got)
	}
}

// fakeGC records draw calls without rasterizing.
type fakeGC struct {
	recordingSink
	fills   []color.Color
	dashes  [][]float64
	widths  []float64
	strokes int
	fillStr int
}

func (f *fakeGC) SetFillColor(c color.Color)   { f.fills = append(f.fills, c) }
func (f *fakeGC) SetStrokeColor(color.Color)   {}
func (f *fakeGC) SetLineWidth(w float64)       { f.widths = append(f.widths, w) }
func (f *fakeGC) SetLineDash(d []float64, _ float64) {
	f.dashes = append(f.dashes, d)
}
func (f *fakeGC) Fill(...*drawing.Path)       {}
func (f *fakeGC) Stroke(...*drawing.Path)     { f.strokes++ }
func (f *fakeGC) FillStroke(...*drawing.Path) { f.fillStr++ }

func TestDrawHighlightOutline(t *testing.T) {
	hl := varAt("hl", 40, 0.001)
	hl.IsHighlighted = true
	p := identityPlot(varAt("plain", 10, 0.001), hl)

	var gc fakeGC
	p.Draw(&gc)

	// One filled ellipse per variant plus one dashed outline.
	if gc.fillStr != 2 {
		t.Fatalf("expected 2 fill+stroke ellipses, got %d", gc.fillStr)
	}
	if gc.strokes != 1 {
		t.Fatalf("expected 1 outline stroke, got %d", gc.strokes)
	}
	// Dash pattern set for the outline, then reset.
	if len(gc.dashes) != 2 || gc.dashes[0] == nil || gc.dashes[1] != nil {
		t.Fatalf("dash set/reset wrong: %+v", gc.dashes)
	}

	// The outline path is highlightPad larger in both radii: its MoveTo
	// lands at cx-(rx+5). Base ellipse of a highlighted af=0.001 variant:
	// rx=3, so outline starts at 40-8=32.
	var moves [][]float64
	for _, op := range gc.ops {
		if op.op == "move" {
			moves = append(moves, op.coords)
		}
	}
	if len(moves) != 3 {
		t.Fatalf("expected 3 ellipse paths, got %d", len(moves))
	}
	if moves[2][0] != 32 {
		t.Fatalf("outline MoveTo x = %v, want 32", moves[2][0])
	}
	// Default fill color applies when no VariantColor func is given.
	if gc.fills[0] != color.Color(DefaultColor) {
		t.Fatalf("default fill = %v, want %v", gc.fills[0], DefaultColor)
	}
}

func TestRenderImagePixels(t *testing.T) {
	p := identityPlot(varAt("v", 50, 0.001))
	img, err := p.RenderImage(1)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 60 {
		t.Fatalf("backing size %dx%d, want 100x60", b.Dx(), b.Dy())
	}
	// Marker center is filled with the default gray.
	if got := img.RGBAAt(50, 30); got != DefaultColor {
		t.Fatalf("center pixel = %v, want %v", got, DefaultColor)
	}
	// Far corner stays clear.
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Fatalf("corner pixel should be transparent, got %v", got)
	}
}

func TestRenderImagePixelRatioScalesBacking(t *testing.T) {
	p := identityPlot(varAt("v", 50, 0.001))
	img, err := p.RenderImage(2)
	if err != nil {
		t.Fatalf("RenderImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 120 {
		t.Fatalf("backing size %dx%d, want 200x120", b.Dx(), b.Dy())
	}
	// Drawing is scaled with the backing store: the marker center moves to
	// device-pixel (100, 60).
	if got := img.RGBAAt(100, 60); got != DefaultColor {
		t.Fatalf("scaled center pixel = %v, want %v", got, DefaultColor)
	}
}

func TestRenderRequiresWidthAndScale(t *testing.T) {
	p := &Plot{ScalePosition: LinearScale(0, 1, 1)}
	if _, err := p.RenderImage(1); err == nil {
		t.Fatalf("expected error for missing width")
	}
	p = &Plot{Width: 100}
	if _, err := p.RenderImage(1); err == nil {
		t.Fatalf("expected error for missing scale func")
	}
}

func TestOverviewImageSizes(t *testing.T) {
	img, err := OverviewImage(nil, 400, 120)
	if err != nil {
		t.Fatalf("OverviewImage(empty): %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 120 {
		t.Fatalf("blank overview size %v", img.Bounds())
	}

	vs := []variants.Variant{varAt("a", 10, 0.0001), varAt("b", 60, 0.001), varAt("zero", 30, 0)}
	img, err = OverviewImage(vs, 400, 120)
	if err != nil {
		t.Fatalf("OverviewImage: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 120 {
		t.Fatalf("overview size %v", img.Bounds())
	}

	// A single plottable point must not error (range gets widened).
	if _, err := OverviewImage(vs[:1], 400, 120); err != nil {
		t.Fatalf("OverviewImage(single): %v", err)
	}
}
