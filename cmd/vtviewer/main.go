// Variant track viewer.
//
// Renders a horizontal strip of variant markers for a genomic region, scaled
// by position and allele frequency, with an allele-frequency overview chart
// above it. Hovering the track reports the variants near the cursor.
//
// Input is a variants JSONL file (one variant object per line) as exported
// by the association backend; see src/variants for the record shape.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/cmd/vtviewer/uihelpers"
	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/track"
	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// consequenceColor picks the marker fill by consequence category, loosely
// following the browser's annotation palette. Unannotated variants get the
// default mid-gray.
func consequenceColor(v variants.Variant) color.Color {
	switch v.Consequence {
	case "lof", "pLoF", "frameshift_variant", "stop_gained", "splice_donor_variant", "splice_acceptor_variant":
		return color.RGBA{R: 221, G: 44, B: 0, A: 255}
	case "missense_variant", "missense", "inframe_deletion", "inframe_insertion":
		return color.RGBA{R: 240, G: 201, B: 77, A: 255}
	case "synonymous_variant", "synonymous":
		return color.RGBA{R: 46, G: 125, B: 50, A: 255}
	default:
		return track.DefaultColor
	}
}

// buildScale maps the viewed interval onto [0, width]. With no explicit
// region the domain is the loaded variants' xpos extent, padded slightly so
// edge markers aren't clipped.
func buildScale(vs []variants.Variant, region string, width int) (track.PositionScale, error) {
	if region != "" {
		start, stop, err := variants.ParseInterval(region)
		if err != nil {
			return nil, err
		}
		return track.LinearScale(float64(start), float64(stop), float64(width)), nil
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("no variants and no -region: nothing to derive a scale from")
	}
	min, max := vs[0].Xpos, vs[0].Xpos
	for _, v := range vs[1:] {
		if v.Xpos < min {
			min = v.Xpos
		}
		if v.Xpos > max {
			max = v.Xpos
		}
	}
	pad := float64(max-min) * 0.02
	if pad < 1 {
		pad = 1
	}
	return track.LinearScale(float64(min)-pad, float64(max)+pad, float64(width)), nil
}

func main() {
	var filePath string
	var region string
	var width int
	var height int
	var threshold float64
	var highlight string
	var logLevel string
	var screenshots bool
	var outDir string
	flag.StringVar(&filePath, "file", "variants.jsonl", "Path to variants JSONL file")
	flag.StringVar(&region, "region", "", "Region to view, e.g. chr1:55039447-55064852 (default: extent of the file)")
	flag.IntVar(&width, "width", 1000, "Logical track width in pixels")
	flag.IntVar(&height, "height", track.DefaultHeight, "Logical track height in pixels")
	flag.Float64Var(&threshold, "threshold", track.DefaultHoverThreshold, "Hover distance threshold in pixels")
	flag.StringVar(&highlight, "highlight", "", "Variant ID to highlight with a dashed outline")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&screenshots, "screenshots", false, "Render track and overview PNGs headlessly and exit")
	flag.StringVar(&outDir, "out", "screenshots", "Output directory for -screenshots")
	flag.Parse()

	variants.SetLogLevel(logLevel)

	var loadOpts variants.LoadOptions
	if region != "" {
		start, stop, err := variants.ParseInterval(region)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		loadOpts = variants.LoadOptions{XposStart: start, XposStop: stop}
	}
	vs, err := variants.LoadFile(filePath, loadOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if highlight != "" {
		found := false
		for i := range vs {
			if vs[i].VariantID == highlight {
				vs[i].IsHighlighted = true
				found = true
			}
		}
		if !found {
			variants.Warnf("highlight variant %s not in loaded set", highlight)
		}
	}

	if screenshots {
		if err := RunScreenshotsMode(vs, region, outDir, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.New()
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Variant Track Viewer")

	width = uihelpers.ComputeTrackWidth(width)
	scale, err := buildScale(vs, region, width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	plot := &track.Plot{
		Width:          width,
		Height:         height,
		ScalePosition:  scale,
		Variants:       vs,
		VariantColor:   consequenceColor,
		HoverThreshold: threshold,
	}

	hoverLabel := widget.NewLabel("")
	tr := newVariantsTrack(plot, func(near []variants.Variant) {
		if len(near) == 0 {
			hoverLabel.SetText("")
			return
		}
		ids := make([]string, len(near))
		for i, v := range near {
			ids[i] = v.VariantID
		}
		hoverLabel.SetText(fmt.Sprintf("%d nearby: %s", len(near), uihelpers.FormatHoverSummary(ids, 4)))
	})
	tr.surface.Attach(func(r *canvas.Raster) {
		variants.Debugf("track surface attached (min %v)", r.MinSize())
	})

	ovHeight := uihelpers.ComputeOverviewHeight(width)
	ovImg, err := track.OverviewImage(vs, width, ovHeight)
	if err != nil {
		fmt.Printf("[viewer] overview chart error: %v; showing blank fallback\n", err)
		ovImg = track.Blank(width, ovHeight)
	}
	overview := canvas.NewImageFromImage(ovImg)
	overview.FillMode = canvas.ImageFillContain
	overview.SetMinSize(fyne.NewSize(float32(width), float32(ovHeight)))

	w.SetContent(container.NewVBox(overview, tr, hoverLabel))
	w.Resize(fyne.NewSize(float32(width)+24, float32(ovHeight+height)+120))
	w.ShowAndRun()
}
