// Headless variant track renderer.
//
// Loads a variants JSONL file and writes the rendered track as a PNG, with
// an optional allele-frequency overview chart. Defaults come from VT_* env
// vars (VT_FILE, VT_REGION, VT_WIDTH, ...) and can be overridden by flags,
// so the tool slots into report pipelines without long command lines.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/track"
	"github.com/broadinstitute/all-by-all-aou-browser-sub002/src/variants"
)

type config struct {
	File     string  `default:"variants.jsonl"`
	Out      string  `default:"track.png"`
	Region   string
	Width    int     `default:"1000"`
	Height   int     `default:"60"`
	Scale    float64 `default:"1"`
	Overview string
	LogLevel string `split_words:"true" default:"info"`
}

// regionScale maps the requested region, or the loaded extent when no region
// is given, onto [0, width].
func regionScale(vs []variants.Variant, region string, width int) (track.PositionScale, error) {
	if region != "" {
		start, stop, err := variants.ParseInterval(region)
		if err != nil {
			return nil, err
		}
		return track.LinearScale(float64(start), float64(stop), float64(width)), nil
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("no variants and no region: nothing to derive a scale from")
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

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func run(cfg config) error {
	variants.SetLogLevel(cfg.LogLevel)

	var opts variants.LoadOptions
	if cfg.Region != "" {
		start, stop, err := variants.ParseInterval(cfg.Region)
		if err != nil {
			return err
		}
		opts = variants.LoadOptions{XposStart: start, XposStop: stop}
	}
	vs, err := variants.LoadFile(cfg.File, opts)
	if err != nil {
		return err
	}

	scale, err := regionScale(vs, cfg.Region, cfg.Width)
	if err != nil {
		return err
	}
	plot := &track.Plot{
		Width:         cfg.Width,
		Height:        cfg.Height,
		ScalePosition: scale,
		Variants:      vs,
	}
	img, err := plot.RenderImage(cfg.Scale)
	if err != nil {
		return err
	}
	if err := writePNG(cfg.Out, img); err != nil {
		return err
	}
	variants.Infof("wrote %s (%d variants)", cfg.Out, len(vs))

	if cfg.Overview != "" {
		ov, err := track.OverviewImage(vs, cfg.Width, cfg.Height*2)
		if err != nil {
			return err
		}
		if err := writePNG(cfg.Overview, ov); err != nil {
			return err
		}
		variants.Infof("wrote %s", cfg.Overview)
	}
	return nil
}

func main() {
	var cfg config
	if err := envconfig.Process("vt", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	flag.StringVar(&cfg.File, "file", cfg.File, "Path to variants JSONL file")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "Output PNG path for the track")
	flag.StringVar(&cfg.Region, "region", cfg.Region, "Region to render, e.g. chr1:55039447-55064852 (default: extent of the file)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Logical track width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Logical track height in pixels")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "Device pixel ratio for the backing image")
	flag.StringVar(&cfg.Overview, "overview", cfg.Overview, "Optional output PNG path for the allele-frequency overview chart")
	flag.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
