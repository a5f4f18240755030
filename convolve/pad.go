// SPDX-License-Identifier: MIT
// Package: convolve
//
// Purpose:
//   - Border producers for Pad and resampling helpers: ReflectPad, CenterPad,
//     RightPad, DownSample.
//
// Notes:
//   - Centring uses round-half-to-even on (dstDim-srcDim)/2, so an odd
//     surplus of 1 puts the extra sample on the far side and a surplus of 3
//     puts two samples before the source.

package convolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalespace/pixel"
)

// centreOffsets returns the (row,col) position of src's origin inside dst.
func centreOffsets(dst, src *pixel.Buffer) (int, int) {
	rowPad := int(math.RoundToEven(float64(dst.Height()-src.Height()) / 2))
	colPad := int(math.RoundToEven(float64(dst.Width()-src.Width()) / 2))

	return rowPad, colPad
}

// validateGrow checks that dst is at least as large as src and distinct from it.
func validateGrow(dst, src *pixel.Buffer) error {
	if err := pixel.ValidateNotNil(dst, src); err != nil {
		return err
	}
	if dst.Width() < src.Width() || dst.Height() < src.Height() {
		return fmt.Errorf("destination %dx%d smaller than source %dx%d: %w",
			dst.Width(), dst.Height(), src.Width(), src.Height(), pixel.ErrDimensionMismatch)
	}

	return pixel.ValidateNoAlias(dst, src)
}

// CenterPad copies src into the centre of dst. Samples of dst outside the
// copied window are left untouched.
func CenterPad(dst, src *pixel.Buffer) error {
	if err := validateGrow(dst, src); err != nil {
		return convolveErrorf("convolve.CenterPad", err)
	}
	rowPad, colPad := centreOffsets(dst, src)

	return pixel.Insert(dst, src, rowPad, colPad)
}

// ReflectPad centres src in dst, shifted by (dRow,dCol), and fills every
// sample of dst through the reflect rule: dst(r,c) = src.AtReflect(r-pr, c-pc).
//
// Errors: pixel.ErrDimensionMismatch if dst is smaller than src;
// pixel.ErrBadArgument if the shift moves the origin to a negative offset.
func ReflectPad(dst, src *pixel.Buffer, dRow, dCol int) error {
	const op = "convolve.ReflectPad"
	if err := validateGrow(dst, src); err != nil {
		return convolveErrorf(op, err)
	}
	rowPad, colPad := centreOffsets(dst, src)
	rowPad += dRow
	colPad += dCol
	if rowPad < 0 || colPad < 0 {
		return convolveErrorf(op, fmt.Errorf("origin (%d,%d): %w", rowPad, colPad, pixel.ErrBadArgument))
	}

	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			dst.SetFast(r, c, src.AtReflect(r-rowPad, c-colPad))
		}
	}

	return nil
}

// RightPad copies src into the left of dst and fills the p = dstW-srcW
// extra columns with src's first p columns in reverse order:
// dst(r, W+k) = src(r, p-1-k).
//
// Contract: equal heights and 0 <= p <= srcW.
func RightPad(dst, src *pixel.Buffer) error {
	const op = "convolve.RightPad"
	if err := validateGrow(dst, src); err != nil {
		return convolveErrorf(op, err)
	}
	pad := dst.Width() - src.Width()
	if dst.Height() != src.Height() || pad > src.Width() {
		return convolveErrorf(op, fmt.Errorf("%dx%d from %dx%d: %w",
			dst.Width(), dst.Height(), src.Width(), src.Height(), pixel.ErrDimensionMismatch))
	}

	w := src.Width()
	for r := 0; r < src.Height(); r++ {
		for c := 0; c < w; c++ {
			dst.SetFast(r, c, src.AtFast(r, c))
		}
		for k := 0; k < pad; k++ {
			dst.SetFast(r, w+k, src.AtFast(r, pad-1-k))
		}
	}

	return nil
}

// DownSample keeps every rowStep-th row and colStep-th column of src.
//
// Contract: steps >= 1 and dst = ceil(W/colStep)×ceil(H/rowStep).
func DownSample(dst, src *pixel.Buffer, rowStep, colStep int) error {
	const op = "convolve.DownSample"
	if err := pixel.ValidateNotNil(dst, src); err != nil {
		return convolveErrorf(op, err)
	}
	if rowStep < 1 || colStep < 1 {
		return convolveErrorf(op, fmt.Errorf("step (%d,%d): %w", rowStep, colStep, pixel.ErrBadArgument))
	}
	if err := pixel.ValidateShape(dst, ceilDiv(src.Width(), colStep), ceilDiv(src.Height(), rowStep)); err != nil {
		return convolveErrorf(op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return convolveErrorf(op, err)
	}

	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			dst.SetFast(r, c, src.AtFast(r*rowStep, c*colStep))
		}
	}

	return nil
}
