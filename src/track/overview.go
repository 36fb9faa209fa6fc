package track

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

// OverviewImage renders a small allele-frequency scatter (log10 AF by
// position) for the given variants, used above the track as orientation.
// Variants with no allele frequency are left out. An empty set yields a
// blank image.
func OverviewImage(vs []variants.Variant, width, height int) (image.Image, error) {
	if width < 100 {
		width = 100
	}
	if height < 60 {
		height = 60
	}
	var xsv, ysv []float64
	for _, v := range vs {
		if !(v.AlleleFreq > 0) {
			continue
		}
		x := float64(v.Xpos)
		if v.Xpos == 0 {
			x = float64(v.Position)
		}
		xsv = append(xsv, x)
		ysv = append(ysv, math.Log10(v.AlleleFreq))
	}
	if len(xsv) == 0 {
		return Blank(width, height), nil
	}
	if len(xsv) == 1 {
		// go-chart cannot derive a range from a single point.
		xsv = append(xsv, xsv[0]+1)
		ysv = append(ysv, ysv[0])
	}
	// Zero-delta ranges make go-chart reject the render; widen explicitly.
	xRange := paddedRange(xsv)
	yRange := paddedRange(ysv)
	st := chart.Style{
		StrokeWidth: 0,
		DotWidth:    3,
		DotColor:    chart.ColorAlternateGray,
	}
	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 8, Left: 12, Right: 12, Bottom: 16}},
		XAxis:      chart.XAxis{Range: xRange},
		YAxis:      chart.YAxis{Name: "log10 AF", Range: yRange},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "AF", XValues: xsv, YValues: ysv, Style: st},
		},
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render overview chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode overview chart: %w", err)
	}
	return img, nil
}

func paddedRange(vals []float64) *chart.ContinuousRange {
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max <= min {
		max = min + 1
	}
	pad := (max - min) * 0.05
	return &chart.ContinuousRange{Min: min - pad, Max: max + pad}
}

// Blank returns a subtle dark placeholder image.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}
