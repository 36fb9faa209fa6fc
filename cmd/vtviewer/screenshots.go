package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/cmd/vtviewer/uihelpers"
	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/track"
	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

// screenshotPixelRatio renders headless output at 2x backing resolution, the
// way a high-density display would.
const screenshotPixelRatio = 2.0

// RunScreenshotsMode renders the variant track and the overview chart to
// PNGs under outDir without creating a UI window.
func RunScreenshotsMode(vs []variants.Variant, region, outDir string, width, height int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	width = uihelpers.ComputeTrackWidth(width)
	scale, err := buildScale(vs, region, width)
	if err != nil {
		return err
	}
	plot := &track.Plot{
		Width:         width,
		Height:        height,
		ScalePosition: scale,
		Variants:      vs,
		VariantColor:  consequenceColor,
	}
	img, err := plot.RenderImage(screenshotPixelRatio)
	if err != nil {
		return err
	}
	if err := writePNG(filepath.Join(outDir, "track.png"), img); err != nil {
		return err
	}

	ovImg, err := track.OverviewImage(vs, width, uihelpers.ComputeOverviewHeight(width))
	if err != nil {
		return fmt.Errorf("render overview: %w", err)
	}
	return writePNG(filepath.Join(outDir, "overview.png"), ovImg)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	fmt.Printf("[viewer] wrote %s\n", path)
	return nil
}
