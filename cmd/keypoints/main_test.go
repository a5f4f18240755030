// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace"
	"github.com/katalvlaran/scalespace/detect"
)

// writeBlobPNG writes a w×h grey PNG with a bright Gaussian blob in the middle.
func writeBlobPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x-w/2), float64(y-h/2)
			img.SetGray(x, y, color.Gray{Y: uint8(255 * math.Exp(-(dx*dx+dy*dy)/18))})
		}
	}
	path := filepath.Join(t.TempDir(), "blob.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return path
}

func TestGreyFromImage_AveragesColourIgnoresAlpha(t *testing.T) {
	t.Parallel()
	img := image.NewNRGBA(image.Rect(2, 3, 4, 4))
	img.Set(2, 3, color.NRGBA{R: 30, G: 60, B: 90, A: 255})
	img.Set(3, 3, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	grey, err := greyFromImage(img, "test")
	require.NoError(t, err)
	w, h := grey.Shape()
	require.Equal(t, [2]int{2, 1}, [2]int{w, h})
	require.Equal(t, float32(60), grey.AtFast(0, 0))
	require.Equal(t, float32(255), grey.AtFast(0, 1))
}

func TestRun_TextAndJSON(t *testing.T) {
	t.Parallel()
	path := writeBlobPNG(t, 40, 30)
	cfg := Config{Input: path, Detect: detect.NewConfig(detect.WithFloor(0.01), detect.WithLevels(2))}

	var text bytes.Buffer
	require.NoError(t, run(cfg, &text))
	require.True(t, strings.HasSuffix(text.String(), " keypoints\n"))

	cfg.JSON = true
	var js bytes.Buffer
	require.NoError(t, run(cfg, &js))
	var out []keypointJSON
	require.NoError(t, json.Unmarshal(js.Bytes(), &out))
	require.Equal(t, strings.Count(text.String(), "\n")-1, len(out))
}

func TestRun_FitAndHarris(t *testing.T) {
	t.Parallel()
	path := writeBlobPNG(t, 64, 32)
	cfg := Config{Input: path, Long: 32, Short: 24, Harris: true, Detect: detect.DefaultConfig()}
	var buf bytes.Buffer
	require.NoError(t, run(cfg, &buf))
	require.Contains(t, buf.String(), "keypoints")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()
	err := run(Config{Input: filepath.Join(t.TempDir(), "nope.png"), Detect: detect.DefaultConfig()}, &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

// Not parallel: it swaps the process-wide logger.
func TestRun_LogsImageSummaryAtInfo(t *testing.T) {
	var logs bytes.Buffer
	scalespace.SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { scalespace.SetLogger(nil) })

	path := writeBlobPNG(t, 24, 16)
	require.NoError(t, run(Config{Input: path, Detect: detect.DefaultConfig()}, &bytes.Buffer{}))
	require.Contains(t, logs.String(), "level=INFO msg=\"image loaded\"")
	require.NotContains(t, logs.String(), "level=DEBUG")
}
