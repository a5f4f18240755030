// SPDX-License-Identifier: MIT

// Command keypoints decodes an image, converts it to grey and prints the
// scale-space extrema (or Harris corners) found in it.
//
// Usage:
//
//	keypoints -in photo.jpg [-long 640 -short 480] [-harris] [-json] [-v]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/katalvlaran/scalespace"
	"github.com/katalvlaran/scalespace/detect"
)

// Config holds the command-line options.
type Config struct {
	Input   string
	Long    int
	Short   int
	Harris  bool
	JSON    bool
	Verbose bool
	Detect  detect.Config
}

func main() {
	cfg := parseFlags()

	if cfg.Input == "" {
		log.Fatal("input image is required (-in)")
	}
	if err := cfg.Detect.Validate(); err != nil {
		log.Fatalf("invalid detector settings: %v", err)
	}
	if cfg.Verbose {
		scalespace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("keypoints: %v", err)
	}
}

func parseFlags() Config {
	cfg := Config{Detect: detect.DefaultConfig()}

	flag.StringVar(&cfg.Input, "in", "", "Path to a PNG, JPEG, GIF, BMP, TIFF or WebP image")
	flag.IntVar(&cfg.Long, "long", 0, "Fit the image into long×short before detecting (0 keeps the original size)")
	flag.IntVar(&cfg.Short, "short", 0, "Short side of the working frame")
	flag.BoolVar(&cfg.Harris, "harris", false, "Detect Harris corners instead of DoG extrema")
	flag.BoolVar(&cfg.JSON, "json", false, "Print keypoints as JSON")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")
	flag.Float64Var(&cfg.Detect.Floor, "floor", cfg.Detect.Floor, "Minimum signed response of an extremum")
	flag.Float64Var(&cfg.Detect.Fudge, "fudge", cfg.Detect.Fudge, "Multiplier on the coarser neighbour level")
	flag.Float64Var(&cfg.Detect.Octaves, "octaves", cfg.Detect.Octaves, "Variance growth per octave")
	flag.IntVar(&cfg.Detect.BlurSteps, "steps", cfg.Detect.BlurSteps, "DoG levels per octave")
	flag.IntVar(&cfg.Detect.Levels, "levels", cfg.Detect.Levels, "Number of half-size octaves")

	flag.Parse()

	return cfg
}

// run loads the image, detects and writes the result to w.
func run(cfg Config, w io.Writer) error {
	grey, err := loadGrey(cfg.Input)
	if err != nil {
		return err
	}
	origW, origH := grey.Shape()
	if cfg.Long > 0 && cfg.Short > 0 {
		if grey, err = fitGrey(grey, cfg.Long, cfg.Short); err != nil {
			return err
		}
	}
	scalespace.Logger().Info("image loaded",
		"path", cfg.Input, "width", origW, "height", origH, "workWidth", grey.Width(), "workHeight", grey.Height())

	detectFn := detect.Keypoints
	if cfg.Harris {
		detectFn = detect.HarrisKeypoints
	}
	kps, err := detectFn(cfg.Detect, grey)
	if err != nil {
		return err
	}

	if cfg.JSON {
		return writeJSON(w, kps)
	}

	return writeText(w, kps)
}

// keypointJSON is the JSON form of one keypoint.
type keypointJSON struct {
	Row      float64 `json:"row"`
	Col      float64 `json:"col"`
	Size     float64 `json:"size"`
	Octave   int     `json:"octave"`
	Level    int     `json:"level"`
	Polarity string  `json:"polarity"`
	Response float64 `json:"response"`
}

func writeJSON(w io.Writer, kps []detect.Keypoint) error {
	out := make([]keypointJSON, len(kps))
	for i, kp := range kps {
		out[i] = keypointJSON{
			Row:      kp.Row,
			Col:      kp.Col,
			Size:     kp.Size,
			Octave:   kp.Octave,
			Level:    kp.Level,
			Polarity: kp.Polarity.String(),
			Response: kp.Response,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

func writeText(w io.Writer, kps []detect.Keypoint) error {
	for _, kp := range kps {
		if _, err := fmt.Fprintf(w, "%s octave=%d level=%d row=%.2f col=%.2f size=%.2f response=%g\n",
			kp.Polarity, kp.Octave, kp.Level, kp.Row, kp.Col, kp.Size, kp.Response); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d keypoints\n", len(kps))

	return err
}
