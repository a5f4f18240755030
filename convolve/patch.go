// SPDX-License-Identifier: MIT

package convolve

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/scalespace/pixel"
)

// AppendPatch appends the samples of the w×h window whose top-left corner is
// (row,col) to dst, row-major, visiting every rowStep-th row and colStep-th
// column. Use steps of 1 for the full window.
//
// Errors: pixel.ErrNilBuffer, pixel.ErrInvalidDimensions (w or h < 1),
// pixel.ErrBadArgument (step < 1), pixel.ErrOutOfRange (window leaves src).
func AppendPatch(dst []float32, src *pixel.Buffer, row, col, w, h, rowStep, colStep int) ([]float32, error) {
	const op = "convolve.AppendPatch"
	if err := validatePatch(src, row, col, w, h, rowStep, colStep); err != nil {
		return dst, convolveErrorf(op, err)
	}

	dst = slices.Grow(dst, ceilDiv(h, rowStep)*ceilDiv(w, colStep))
	for r := row; r < row+h; r += rowStep {
		for c := col; c < col+w; c += colStep {
			dst = append(dst, src.AtFast(r, c))
		}
	}

	return dst, nil
}

// AppendKernelPatch is AppendPatch with each visited sample replaced by
// Spot(src, kernel, r, c), rounded to float32.
//
// Errors: as AppendPatch; kernel must be non-nil.
func AppendKernelPatch(dst []float32, src, kernel *pixel.Buffer, row, col, w, h, rowStep, colStep int) ([]float32, error) {
	const op = "convolve.AppendKernelPatch"
	if err := pixel.ValidateNotNil(kernel); err != nil {
		return dst, convolveErrorf(op, err)
	}
	if err := validatePatch(src, row, col, w, h, rowStep, colStep); err != nil {
		return dst, convolveErrorf(op, err)
	}

	dst = slices.Grow(dst, ceilDiv(h, rowStep)*ceilDiv(w, colStep))
	for r := row; r < row+h; r += rowStep {
		for c := col; c < col+w; c += colStep {
			dst = append(dst, float32(Spot(src, kernel, r, c)))
		}
	}

	return dst, nil
}

func validatePatch(src *pixel.Buffer, row, col, w, h, rowStep, colStep int) error {
	if err := pixel.ValidateNotNil(src); err != nil {
		return err
	}
	if w < 1 || h < 1 {
		return fmt.Errorf("patch %dx%d: %w", w, h, pixel.ErrInvalidDimensions)
	}
	if rowStep < 1 || colStep < 1 {
		return fmt.Errorf("steps (%d,%d): %w", rowStep, colStep, pixel.ErrBadArgument)
	}
	if row < 0 || col < 0 || row > src.Height()-h || col > src.Width()-w {
		return fmt.Errorf("patch %dx%d at (%d,%d) in %dx%d: %w",
			w, h, row, col, src.Width(), src.Height(), pixel.ErrOutOfRange)
	}

	return nil
}
