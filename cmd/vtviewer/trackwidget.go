package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/track"
	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

// variantsTrack composes the drawing surface with variant marker drawing and
// hover reporting. Pointer positions arrive widget-local from the toolkit,
// so the cursor X is already in surface coordinates.
type variantsTrack struct {
	widget.BaseWidget

	plot    *track.Plot
	onHover func([]variants.Variant)

	surface *trackSurface
	// xs holds the pixel X per variant from the latest render pass; hover
	// queries reuse it instead of recomputing the scale per pointer event.
	xs []track.VariantX
}

func newVariantsTrack(p *track.Plot, onHover func([]variants.Variant)) *variantsTrack {
	t := &variantsTrack{plot: p, onHover: onHover}
	h := p.Height
	if h <= 0 {
		h = track.DefaultHeight
	}
	t.surface = newTrackSurface(float32(p.Width), float32(h), t.paint)
	t.ExtendBaseWidget(t)
	return t
}

func (t *variantsTrack) paint(gc *drawing.RasterGraphicContext, _, _ float64) {
	t.xs = t.plot.VariantXs()
	t.plot.DrawXs(gc, t.xs)
}

// SetVariants swaps the variant list and repaints.
func (t *variantsTrack) SetVariants(vs []variants.Variant) {
	t.plot.Variants = vs
	t.xs = nil
	t.Refresh()
}

func (t *variantsTrack) currentXs() []track.VariantX {
	if t.xs == nil {
		t.xs = t.plot.VariantXs()
	}
	return t.xs
}

func (t *variantsTrack) threshold() float64 {
	if t.plot.HoverThreshold > 0 {
		return t.plot.HoverThreshold
	}
	return track.DefaultHoverThreshold
}

func (t *variantsTrack) MouseMoved(ev *desktop.MouseEvent) {
	if t.onHover == nil {
		return
	}
	t.onHover(track.Nearby(t.currentXs(), float64(ev.Position.X), t.threshold()))
}

func (t *variantsTrack) MouseIn(ev *desktop.MouseEvent) { t.MouseMoved(ev) }

func (t *variantsTrack) MouseOut() {
	if t.onHover == nil {
		return
	}
	t.onHover(nil)
}

func (t *variantsTrack) CreateRenderer() fyne.WidgetRenderer {
	return &variantsTrackRenderer{t: t}
}

type variantsTrackRenderer struct {
	t *variantsTrack
}

func (r *variantsTrackRenderer) Destroy()              {}
func (r *variantsTrackRenderer) Layout(size fyne.Size) { r.t.surface.Resize(size) }
func (r *variantsTrackRenderer) MinSize() fyne.Size    { return r.t.surface.MinSize() }
func (r *variantsTrackRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.t.surface}
}
func (r *variantsTrackRenderer) Refresh() { r.t.surface.Refresh() }

// Assert that variantsTrack implements desktop.Hoverable
var _ desktop.Hoverable = (*variantsTrack)(nil)
