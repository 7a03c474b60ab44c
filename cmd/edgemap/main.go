// Command edgemap runs the edge-extraction stage of the image-to-mesh
// pipeline over one or more images: decode, optional size cap, Gaussian
// denoise, gradient edge extraction, and PNG/JPEG output, with optional
// diagnostic overlays and a triangulation point dump.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/meshpipe/edgemap/internal/detection"
	"github.com/meshpipe/edgemap/internal/edge"
	"github.com/meshpipe/edgemap/internal/imaging"
	"github.com/meshpipe/edgemap/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	out          string
	sigma        float64
	mode         string
	maxDim       int
	overlay      bool
	overlayColor string
	dirMap       bool
	maxPoints    int
	seed         int64
	stats        bool
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edgemap %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	var opt options
	flag.StringVar(&opt.out, "out", "", "output file (single input) or directory (defaults next to each input)")
	flag.Float64Var(&opt.sigma, "sigma", 1.0, "denoise blur sigma; 0 skips the blur")
	flag.StringVar(&opt.mode, "mode", "gray", "gradient mode: gray or color")
	flag.IntVar(&opt.maxDim, "max-dim", 0, "cap the longer image side in pixels before extraction; 0 disables")
	flag.BoolVar(&opt.overlay, "overlay", false, "also write <name>_overlay.png with edges painted on the source")
	flag.StringVar(&opt.overlayColor, "overlay-color", "#FF3366", "overlay highlight color (#RRGGBB)")
	flag.BoolVar(&opt.dirMap, "dirmap", false, "also write <name>_directions.png (orientation false-color)")
	flag.IntVar(&opt.maxPoints, "points", 0, "also write <name>_points.json with up to N sampled edge points")
	flag.Int64Var(&opt.seed, "seed", 1, "seed for edge point sampling")
	flag.BoolVar(&opt.stats, "stats", false, "print a JSON stats line per image to stdout")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: edgemap [options] image...")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Extracts a binary edge map from each image (blur -> gradient ->")
		fmt.Fprintln(os.Stderr, "non-maximum suppression -> adaptive hysteresis tracking).")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() > 1 && opt.out != "" {
		if info, err := os.Stat(opt.out); err != nil || !info.IsDir() {
			log.Fatal("edgemap: -out must be an existing directory when processing multiple images")
		}
	}

	mode, err := parseMode(opt.mode)
	if err != nil {
		log.Fatalf("edgemap: %v", err)
	}

	cache := imaging.NewCache()
	for _, path := range flag.Args() {
		if err := process(cache, path, mode, opt); err != nil {
			log.Fatalf("edgemap: %s: %v", path, err)
		}
	}
}

func parseMode(s string) (edge.Mode, error) {
	switch s {
	case "gray", "grayscale":
		return edge.ModeGrayscale, nil
	case "color":
		return edge.ModeColor, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want gray or color)", s)
}

// process runs the full pipeline for one input image.
func process(cache *imaging.Cache, path string, mode edge.Mode, opt options) error {
	src, err := cache.Load(path)
	if err != nil {
		return err
	}

	src = imaging.Fit(src, opt.maxDim)
	blurred := imaging.Denoise(src, opt.sigma)

	res, err := edge.Extract(blurred, mode)
	if err != nil {
		return err
	}
	if res.DirectionFaults > 0 {
		log.Printf("%s: %d gradient angles failed to classify (pixels kept)", path, res.DirectionFaults)
	}

	if err := saveImage(outPath(path, opt, "_edges"), res.Edges); err != nil {
		return err
	}

	if opt.overlay {
		over, err := render.Overlay(blurred, res.Edges, opt.overlayColor)
		if err != nil {
			return err
		}
		if err := saveImage(outPath(path, opt, "_overlay"), over); err != nil {
			return err
		}
	}
	if opt.dirMap {
		if err := saveImage(outPath(path, opt, "_directions"), render.DirectionMap(blurred)); err != nil {
			return err
		}
	}
	if opt.maxPoints > 0 {
		points := detection.EdgePoints(res.Edges, opt.maxPoints, opt.seed)
		if err := savePoints(jsonPath(path, opt), points); err != nil {
			return err
		}
	}
	if opt.stats {
		if err := json.NewEncoder(os.Stdout).Encode(res); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
	}
	return nil
}

// outPath derives the output file for one input and suffix. A single
// input with an explicit -out file keeps that name for the edge map;
// everything else lands next to the input (or in the -out directory)
// as <name><suffix>.png.
func outPath(path string, opt options, suffix string) string {
	if opt.out != "" && flag.NArg() == 1 {
		if info, err := os.Stat(opt.out); err != nil || !info.IsDir() {
			if suffix == "_edges" {
				return opt.out
			}
			ext := filepath.Ext(opt.out)
			return strings.TrimSuffix(opt.out, ext) + suffix + ext
		}
	}

	dir := filepath.Dir(path)
	if opt.out != "" {
		dir = opt.out
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(dir, base+suffix+".png")
}

func jsonPath(path string, opt options) string {
	p := outPath(path, opt, "_points")
	return strings.TrimSuffix(p, filepath.Ext(p)) + ".json"
}

// saveImage encodes by extension: JPEG for .jpg/.jpeg, PNG otherwise.
func saveImage(path string, img image.Image) error {
	encoder := imgio.PNGEncoder()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		encoder = imgio.JPEGEncoder(95)
	}
	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func savePoints(path string, points []detection.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(points); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
