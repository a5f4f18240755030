// SPDX-License-Identifier: MIT
// Package: pyramid
//
// Purpose:
//   - ReduceHalf: the 2× box reduction every pyramid level is made from.
//   - Expand: the nearest-neighbour inverse mapping used by the Laplacian.
//
// ReduceHalf edge rules (src W×H, dst ceil(W/2)×ceil(H/2), hw=W/2, hh=H/2):
//
//	interior  r<hh, c<hw : mean of rows {2r,2r+1} × cols {2c,2c+1}
//	odd W     c=dstW-1   : mean of rows {2r,2r+1} × cols {W-1,W-2}
//	odd H     r=dstH-1   : mean of rows {H-1,H-2} × cols {2c,2c+1}
//	odd both  corner     : mean of rows {H-1,H-2} × cols {W-1,W-2}
//
// A source dimension of 1 has no "previous" sample; index W-2 (or H-2)
// clamps to 0, so a constant input still reduces to the same constant.

package pyramid

import (
	"fmt"

	"github.com/katalvlaran/scalespace/pixel"
)

// HalfSize returns (ceil(width/2), ceil(height/2)).
func HalfSize(width, height int) (int, int) {
	return (width + 1) / 2, (height + 1) / 2
}

// pyramidErrorf wraps err with the failing operation name.
func pyramidErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// mean4 averages src over rows {r0,r1} × cols {c0,c1}.
func mean4(src *pixel.Buffer, r0, r1, c0, c1 int) float32 {
	sum := float64(src.AtFast(r0, c0)) + float64(src.AtFast(r0, c1)) +
		float64(src.AtFast(r1, c0)) + float64(src.AtFast(r1, c1))

	return float32(sum / 4)
}

// ReduceHalf writes the 2× reduction of src into dst.
//
// Contract: dst is HalfSize(src) and does not alias src.
// Errors: pixel.ErrNilBuffer, pixel.ErrDimensionMismatch, pixel.ErrAliased.
// Complexity: O(W*H).
func ReduceHalf(dst, src *pixel.Buffer) error {
	const op = "pyramid.ReduceHalf"
	if err := pixel.ValidateNotNil(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}
	w, h := src.Shape()
	dw, dh := HalfSize(w, h)
	if err := pixel.ValidateShape(dst, dw, dh); err != nil {
		return pyramidErrorf(op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}

	hw, hh := w/2, h/2
	prevCol, prevRow := max(w-2, 0), max(h-2, 0)

	for r := 0; r < hh; r++ {
		for c := 0; c < hw; c++ {
			dst.SetFast(r, c, mean4(src, 2*r, 2*r+1, 2*c, 2*c+1))
		}
	}
	if hw != dw {
		for r := 0; r < hh; r++ {
			dst.SetFast(r, dw-1, mean4(src, 2*r, 2*r+1, w-1, prevCol))
		}
	}
	if hh != dh {
		for c := 0; c < hw; c++ {
			dst.SetFast(dh-1, c, mean4(src, h-1, prevRow, 2*c, 2*c+1))
		}
	}
	if hw != dw && hh != dh {
		dst.SetFast(dh-1, dw-1, mean4(src, h-1, prevRow, w-1, prevCol))
	}

	return nil
}

// Expand writes the nearest-neighbour 2× expansion of coarse into dst:
// dst(r,c) = coarse(r/2, c/2) with integer division.
//
// Contract: HalfSize(dst) equals the size of coarse; no aliasing.
func Expand(dst, coarse *pixel.Buffer) error {
	const op = "pyramid.Expand"
	if err := validateExpand(dst, coarse); err != nil {
		return pyramidErrorf(op, err)
	}
	if err := pixel.ValidateNoAlias(dst, coarse); err != nil {
		return pyramidErrorf(op, err)
	}
	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			dst.SetFast(r, c, coarse.AtFast(r/2, c/2))
		}
	}

	return nil
}

// validateExpand checks that coarse is exactly HalfSize(fine).
func validateExpand(fine, coarse *pixel.Buffer) error {
	if err := pixel.ValidateNotNil(fine, coarse); err != nil {
		return err
	}
	hw, hh := HalfSize(fine.Shape())

	return pixel.ValidateShape(coarse, hw, hh)
}
