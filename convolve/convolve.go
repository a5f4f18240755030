// SPDX-License-Identifier: MIT
// Package: convolve
//
// Purpose:
//   - The three correlation engines (Valid, Pad, Reflecting) and the
//     single-location sampler Spot that Reflecting is built on.
//
// Contract (shared):
//   - src, kernel, dst non-nil → else pixel.ErrNilBuffer.
//   - dst sized exactly per engine → else pixel.ErrDimensionMismatch.
//   - dst must not alias src or kernel → else pixel.ErrAliased.
//
// Determinism & Precision:
//   - Fixed row-major output order and row-major kernel order.
//   - Products and sums in float64; one float32 rounding per output sample.

package convolve

import (
	"fmt"

	"github.com/katalvlaran/scalespace/pixel"
)

// Operation name constants for unified error wrapping.
const (
	opValid      = "convolve.Valid"
	opPad        = "convolve.Pad"
	opReflecting = "convolve.Reflecting"
)

// convolveErrorf wraps err with the failing operation name.
func convolveErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateWindow runs the shared nil/alias guards and rejects kernels that do
// not fit inside src.
func validateWindow(dst, src, kernel *pixel.Buffer) error {
	if err := pixel.ValidateNotNil(dst, src, kernel); err != nil {
		return err
	}
	if err := pixel.ValidateNoAlias(dst, src, kernel); err != nil {
		return err
	}
	if kernel.Width() > src.Width() || kernel.Height() > src.Height() {
		return fmt.Errorf("kernel %dx%d larger than source %dx%d: %w",
			kernel.Width(), kernel.Height(), src.Width(), src.Height(), pixel.ErrDimensionMismatch)
	}

	return nil
}

// window correlates kernel with src at the window whose top-left sample is (row,col).
// The whole window must lie inside src.
func window(src, kernel *pixel.Buffer, row, col int) float64 {
	var sum float64
	for kr := 0; kr < kernel.Height(); kr++ {
		for kc := 0; kc < kernel.Width(); kc++ {
			sum += float64(kernel.AtFast(kr, kc)) * float64(src.AtFast(row+kr, col+kc))
		}
	}

	return sum
}

// Valid correlates src with kernel over every position where the kernel fits
// entirely, writing sum/divisor into dst.
//
// Contract: dst is exactly (W-kW+1)×(H-kH+1).
// Errors: pixel.ErrNilBuffer, pixel.ErrAliased, pixel.ErrDimensionMismatch.
// Complexity: O(W'·H'·kW·kH).
//
// A zero divisor is not rejected; it propagates ±Inf/NaN.
func Valid(dst, src, kernel *pixel.Buffer, divisor float64) error {
	if err := validateWindow(dst, src, kernel); err != nil {
		return convolveErrorf(opValid, err)
	}
	outW := src.Width() - kernel.Width() + 1
	outH := src.Height() - kernel.Height() + 1
	if err := pixel.ValidateShape(dst, outW, outH); err != nil {
		return convolveErrorf(opValid, err)
	}

	for r := 0; r < outH; r++ {
		for c := 0; c < outW; c++ {
			dst.SetFast(r, c, float32(window(src, kernel, r, c)/divisor))
		}
	}

	return nil
}

// Pad computes the same sums as Valid but writes each one into a same-size
// dst at (r+kH/2, c+kW/2), i.e. at the sample under the kernel centre. The
// border band of dst (kH/2 rows, kW/2 cols, plus the extra row/col of an
// even kernel) is left untouched; produce it with a pad step if needed.
//
// Contract: dst has the size of src.
func Pad(dst, src, kernel *pixel.Buffer, divisor float64) error {
	if err := validateWindow(dst, src, kernel); err != nil {
		return convolveErrorf(opPad, err)
	}
	if err := pixel.ValidateSameShape(src, dst); err != nil {
		return convolveErrorf(opPad, err)
	}

	rowPad, colPad := kernel.Height()/2, kernel.Width()/2
	outW := src.Width() - kernel.Width() + 1
	outH := src.Height() - kernel.Height() + 1
	for r := 0; r < outH; r++ {
		for c := 0; c < outW; c++ {
			dst.SetFast(r+rowPad, c+colPad, float32(window(src, kernel, r, c)/divisor))
		}
	}

	return nil
}

// Reflecting correlates src with kernel centred on every (r*rowSkip, c*colSkip)
// sample, reading through the reflect rule so every output is defined.
//
// Implementation:
//
//	Stage 1: validate skips (>= 1) and dst = ceil(H/rowSkip)×ceil(W/colSkip).
//	Stage 2: for each output sample, Spot at the corresponding source centre.
//
// Errors: pixel.ErrBadArgument for a skip < 1, plus the shared window errors
// except that the kernel may be larger than src.
func Reflecting(dst, src, kernel *pixel.Buffer, rowSkip, colSkip int) error {
	if err := pixel.ValidateNotNil(dst, src, kernel); err != nil {
		return convolveErrorf(opReflecting, err)
	}
	if rowSkip < 1 || colSkip < 1 {
		return convolveErrorf(opReflecting, fmt.Errorf("skip (%d,%d): %w", rowSkip, colSkip, pixel.ErrBadArgument))
	}
	outW := ceilDiv(src.Width(), colSkip)
	outH := ceilDiv(src.Height(), rowSkip)
	if err := pixel.ValidateShape(dst, outW, outH); err != nil {
		return convolveErrorf(opReflecting, err)
	}
	if err := pixel.ValidateNoAlias(dst, src, kernel); err != nil {
		return convolveErrorf(opReflecting, err)
	}

	for r := 0; r < outH; r++ {
		for c := 0; c < outW; c++ {
			dst.SetFast(r, c, float32(Spot(src, kernel, r*rowSkip, c*colSkip)))
		}
	}

	return nil
}

// Spot returns the reflecting correlation of kernel with src centred at
// (row,col): Σ k(kr,kc) · src.AtReflect(row-kH/2+kr, col-kW/2+kc).
// Any centre is accepted. Neither argument may be nil.
func Spot(src, kernel *pixel.Buffer, row, col int) float64 {
	row0 := row - kernel.Height()/2
	col0 := col - kernel.Width()/2

	var sum float64
	for kr := 0; kr < kernel.Height(); kr++ {
		for kc := 0; kc < kernel.Width(); kc++ {
			sum += float64(kernel.AtFast(kr, kc)) * float64(src.AtReflect(row0+kr, col0+kc))
		}
	}

	return sum
}

// ceilDiv returns ceil(n/d) for n >= 0, d >= 1.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
