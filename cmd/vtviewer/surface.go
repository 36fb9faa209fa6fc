package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// trackSurface is a fixed-logical-size drawing region whose backing raster
// is sized in device pixels, so strokes stay sharp on high-density displays.
// The draw callback runs on every render pass with a context whose transform
// is pre-scaled by the device pixel ratio; the widget's logical size never
// changes with the backing resolution.
type trackSurface struct {
	widget.BaseWidget

	logicalW float32
	logicalH float32
	draw     func(gc *drawing.RasterGraphicContext, w, h float64)

	raster   *canvas.Raster
	observer func(*canvas.Raster)
}

func newTrackSurface(w, h float32, draw func(gc *drawing.RasterGraphicContext, w, h float64)) *trackSurface {
	s := &trackSurface{logicalW: w, logicalH: h, draw: draw}
	s.ExtendBaseWidget(s)
	return s
}

// Attach exposes the internal surface handle to at most one external
// observer: immediately if the surface already exists, and again whenever it
// is recreated.
func (s *trackSurface) Attach(fn func(*canvas.Raster)) {
	s.observer = fn
	if s.raster != nil && fn != nil {
		fn(s.raster)
	}
}

// generate is the raster generator; pw and ph arrive in device pixels.
func (s *trackSurface) generate(pw, ph int) image.Image {
	if s.draw == nil {
		panic("trackSurface: a draw callback is required")
	}
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		// No drawing context obtainable; skip painting.
		return img
	}
	if s.logicalW > 0 && s.logicalH > 0 {
		gc.Scale(float64(pw)/float64(s.logicalW), float64(ph)/float64(s.logicalH))
	}
	s.draw(gc, float64(s.logicalW), float64(s.logicalH))
	return img
}

func (s *trackSurface) CreateRenderer() fyne.WidgetRenderer {
	s.raster = canvas.NewRaster(s.generate)
	if s.observer != nil {
		s.observer(s.raster)
	}
	return &trackSurfaceRenderer{s: s}
}

type trackSurfaceRenderer struct {
	s *trackSurface
}

func (r *trackSurfaceRenderer) Destroy()              {}
func (r *trackSurfaceRenderer) Layout(size fyne.Size) { r.s.raster.Resize(size) }
func (r *trackSurfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.s.logicalW, r.s.logicalH)
}
func (r *trackSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.s.raster}
}
func (r *trackSurfaceRenderer) Refresh() { r.s.raster.Refresh() }
