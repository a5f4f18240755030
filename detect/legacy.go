// SPDX-License-Identifier: MIT
// Package: detect
//
// legacy.go: 4-neighbour peak stencils kept for comparison with results
// produced by the older tooling.
//
// The stencil reads right, down and up, and reads up a second time where
// left would be expected; the left neighbour never takes part. This is
// reproduced as found. Use LocalMax for a symmetric 3×3 comparison.
//
// All three functions write 0 on the one-pixel border ring.

package detect

import (
	"fmt"

	"github.com/katalvlaran/scalespace/pixel"
)

// PeakValue is what PeakMask writes at a peak.
const PeakValue = 255

// validateStencil runs the window-op guards shared by the legacy stencils.
func validateStencil(op string, dst, src *pixel.Buffer) error {
	if err := pixel.ValidateSameShape(src, dst); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// stencil applies f(centre, right, down, up) at interior pixels and zeroes the border.
func stencil(dst, src *pixel.Buffer, f func(centre, right, down, up float32) float32) {
	w, h := src.Shape()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if r == 0 || c == 0 || r == h-1 || c == w-1 {
				dst.SetFast(r, c, 0)
				continue
			}
			dst.SetFast(r, c, f(src.AtFast(r, c), src.AtFast(r, c+1), src.AtFast(r+1, c), src.AtFast(r-1, c)))
		}
	}
}

// PeakMask writes PeakValue where src - threshold is strictly greater than
// the right, down and up neighbours, and 0 elsewhere.
func PeakMask(dst, src *pixel.Buffer, threshold float64) error {
	if err := validateStencil("detect.PeakMask", dst, src); err != nil {
		return err
	}
	t := float32(threshold)
	stencil(dst, src, func(centre, right, down, up float32) float32 {
		v := centre - t
		for _, n := range [...]float32{right, down, up, up} {
			if !(v > n) {
				return 0
			}
		}

		return PeakValue
	})

	return nil
}

// CenterSurround writes src - ¼(right + down + up + up).
func CenterSurround(dst, src *pixel.Buffer) error {
	if err := validateStencil("detect.CenterSurround", dst, src); err != nil {
		return err
	}
	stencil(dst, src, func(centre, right, down, up float32) float32 {
		return centre - 0.25*(right+down+up+up)
	})

	return nil
}

// SurroundPeaks returns PeakMask(|CenterSurround(grey)|, threshold).
func SurroundPeaks(grey *pixel.Buffer, threshold float64) (*pixel.Buffer, error) {
	const op = "detect.SurroundPeaks"
	if err := pixel.ValidateNotNil(grey); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	surround, err := pixel.New(grey.Shape())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = CenterSurround(surround, grey); err != nil {
		return nil, err
	}
	if err = pixel.Abs(surround, surround); err != nil {
		return nil, err
	}
	peaks, _ := pixel.New(grey.Shape())
	if err = PeakMask(peaks, surround, threshold); err != nil {
		return nil, err
	}

	return peaks, nil
}
