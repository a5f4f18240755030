// SPDX-License-Identifier: MIT
// Package: detect
//
// harris.go: the fast corner response.
//
// At every interior pixel, with c the centre sample:
//
//	dx   = c - right
//	dy   = c - down
//	dxdx = c - ½(right + left)
//	dydy = c - ½(down + up)
//	res  = (dx·dy - dxdx·dydy) / (dx + dy)
//
// This is not the textbook determinant/trace measure and is kept exactly as
// the detectors were tuned with it. A zero denominator yields ±Inf or NaN.
// The one-pixel border ring of the output is 0.

package detect

import (
	"fmt"

	"github.com/katalvlaran/scalespace/pixel"
)

// HarrisInto writes the corner response of src into dst.
//
// Errors: pixel.ErrNilBuffer, pixel.ErrDimensionMismatch, pixel.ErrAliased.
func HarrisInto(dst, src *pixel.Buffer) error {
	const op = "detect.HarrisInto"
	if err := pixel.ValidateSameShape(src, dst); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w, h := src.Shape()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if r == 0 || c == 0 || r == h-1 || c == w-1 {
				dst.SetFast(r, c, 0)
				continue
			}
			centre := float64(src.AtFast(r, c))
			right := float64(src.AtFast(r, c+1))
			left := float64(src.AtFast(r, c-1))
			down := float64(src.AtFast(r+1, c))
			up := float64(src.AtFast(r-1, c))

			dx := centre - right
			dy := centre - down
			dxdx := centre - 0.5*(right+left)
			dydy := centre - 0.5*(down+up)
			dst.SetFast(r, c, float32((dx*dy-dxdx*dydy)/(dx+dy)))
		}
	}

	return nil
}

// HarrisResponse allocates and returns the corner response of src.
func HarrisResponse(src *pixel.Buffer) (*pixel.Buffer, error) {
	if err := pixel.ValidateNotNil(src); err != nil {
		return nil, fmt.Errorf("detect.HarrisResponse: %w", err)
	}
	dst, err := pixel.New(src.Shape())
	if err != nil {
		return nil, err
	}
	if err = HarrisInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}
