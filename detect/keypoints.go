// SPDX-License-Identifier: MIT
// Package: detect
//
// keypoints.go: multi-octave drivers that turn extremum masks into
// keypoints in the coordinates of the input image.
//
// Octaves: octave 0 is the input; each further octave is ReduceHalf of the
// previous one. The loop runs cfg.Levels octaves and stops early once an
// octave is smaller than 3×3 (no interior pixels).
//
// Mapping: a mask pixel (r,c) of a W'×H' octave becomes
// (r/H'·H, c/W'·W) in the W×H input, with size scaled by 2^octave.

package detect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalespace"
	"github.com/katalvlaran/scalespace/convolve"
	"github.com/katalvlaran/scalespace/pixel"
	"github.com/katalvlaran/scalespace/pyramid"
)

// harrisSize is the nominal Harris feature size at octave 0.
const harrisSize = 4.0

// minOctaveSide is the smallest side an octave needs to have an interior.
const minOctaveSide = 3

// Keypoint is one detected extremum.
type Keypoint struct {
	Row, Col float64  // centre, in input-image pixels
	Size     float64  // box side, in input-image pixels
	Octave   int      // half-size octave it was found in
	Level    int      // DoG level within the octave; 0 for Harris
	Polarity Polarity // maximum (+) or minimum (-)
	Response float64  // DoG or Harris value at the pixel
}

// Box returns the top-left corner and side of the square centred on k.
func (k Keypoint) Box() (row, col, size float64) {
	return k.Row - k.Size/2, k.Col - k.Size/2, k.Size
}

// octaves calls visit for every octave of grey, reducing between calls.
func octaves(cfg Config, grey *pixel.Buffer, visit func(octave int, img *pixel.Buffer) error) error {
	cur := grey
	for octave := 0; octave < cfg.Levels; octave++ {
		if cur.Width() < minOctaveSide || cur.Height() < minOctaveSide {
			break
		}
		if err := visit(octave, cur); err != nil {
			return fmt.Errorf("octave %d: %w", octave, err)
		}
		if octave == cfg.Levels-1 {
			break
		}
		next, err := pixel.New(pyramid.HalfSize(cur.Shape()))
		if err != nil {
			return err
		}
		if err = pyramid.ReduceHalf(next, cur); err != nil {
			return err
		}
		cur = next
	}

	return nil
}

// collect appends one keypoint per set pixel of mask.
func collect(dst []Keypoint, mask, response *pixel.Buffer, base Keypoint, origW, origH int) []Keypoint {
	w, h := mask.Shape()
	mask.Do(func(r, c int, v float32) {
		if !isCandidate(v) {
			return
		}
		resp := float64(response.AtFast(r, c))
		if math.IsNaN(resp) || math.IsInf(resp, 0) {
			return
		}
		kp := base
		kp.Row = float64(r) / float64(h) * float64(origH)
		kp.Col = float64(c) / float64(w) * float64(origW)
		kp.Response = resp
		dst = append(dst, kp)
	})

	return dst
}

// Keypoints runs BuildScaleSpace and Extrema on every octave of grey and
// returns the surviving extrema, octave by octave, level by level, maxima
// before minima, each in row-major order.
//
// Errors: ErrBadConfig, pixel.ErrNilBuffer.
func Keypoints(cfg Config, grey *pixel.Buffer) ([]Keypoint, error) {
	const op = "detect.Keypoints"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateNotNil(grey); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	origW, origH := grey.Shape()
	var kps []Keypoint
	err := octaves(cfg, grey, func(octave int, img *pixel.Buffer) error {
		ss, err := BuildScaleSpace(cfg, img)
		if err != nil {
			return err
		}
		masks, err := ss.Extrema(cfg)
		if err != nil {
			return err
		}
		before := len(kps)
		scale := math.Pow(2, float64(octave))
		for _, m := range masks {
			base := Keypoint{Size: m.Size * scale, Octave: octave, Level: m.Level}
			base.Polarity = Positive
			kps = collect(kps, m.Positive, ss.DoG[m.Level], base, origW, origH)
			base.Polarity = Negative
			kps = collect(kps, m.Negative, ss.DoG[m.Level], base, origW, origH)
		}
		scalespace.Logger().Debug("dog octave",
			"octave", octave, "width", img.Width(), "height", img.Height(), "keypoints", len(kps)-before)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return kps, nil
}

// HarrisKeypoints blurs every octave of grey with a Gaussian of variance
// cfg.HarrisVariance, computes HarrisResponse and keeps the pixels that
// LocalMax (self comparison, all pixels initially candidates) retains.
// Pixels whose response is not finite are dropped.
//
// Errors: ErrBadConfig, pixel.ErrNilBuffer.
func HarrisKeypoints(cfg Config, grey *pixel.Buffer) ([]Keypoint, error) {
	const op = "detect.HarrisKeypoints"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateNotNil(grey); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	kernel, err := convolve.Gaussian(cfg.KernelSize, cfg.KernelSize, 1, cfg.HarrisVariance, cfg.HarrisVariance, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	origW, origH := grey.Shape()
	var kps []Keypoint
	err = octaves(cfg, grey, func(octave int, img *pixel.Buffer) error {
		blurred, _ := pixel.New(img.Shape())
		if err := convolve.Reflecting(blurred, img, kernel, 1, 1); err != nil {
			return err
		}
		response, err := HarrisResponse(blurred)
		if err != nil {
			return err
		}
		mask, _ := pixel.New(img.Shape())
		mask.Fill(1)
		if err = LocalMax(cfg, response, Positive, 1, response, mask); err != nil {
			return err
		}
		before := len(kps)
		base := Keypoint{Size: harrisSize * math.Pow(2, float64(octave)), Octave: octave, Polarity: Positive}
		kps = collect(kps, mask, response, base, origW, origH)
		scalespace.Logger().Debug("harris octave",
			"octave", octave, "width", img.Width(), "height", img.Height(), "keypoints", len(kps)-before)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return kps, nil
}
