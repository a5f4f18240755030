// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - Elementwise arithmetic: binary (Add, Subtract, Multiply, Divide,
//     LinearCombine) and unary (Scale, AddConstant, Threshold, Abs, Square,
//     Sqrt, Log, Floor), plus range/energy rescaling (Stretch, Normalize,
//     NormalizeMeanStdDev).
//   - Keep the loops in two private micro-kernels (ewBinary, ewUnary) so every
//     op shares one validation order and one fast path.
//
// Contract:
//   - Destination first: Op(dst, inputs..., scalars...).
//   - All buffers must be compatible (same W and H) → else ErrDimensionMismatch.
//   - dst may alias any input. Each output sample depends only on the input
//     samples at the same coordinate, and any statistic an op needs (range,
//     energy, mean) is read before the first write.
//
// Degenerate input policy:
//   - Divide returns the dividend wherever the divisor is exactly 0.
//   - Stretch on a flat source and Normalize on an all-zero source propagate
//     the IEEE result (NaN/±Inf); nothing is clamped.
//
// AI-Hints:
//   - Contiguous buffers take the flat fast path; strided ones fall back to
//     AtFast/SetFast. Results are identical either way.

package pixel

import (
	"math"

	"gonum.org/v1/gonum/blas/blas32"
)

// Operation name constants for unified error wrapping.
const (
	opAdd                 = "Add"
	opSubtract            = "Subtract"
	opMultiply            = "Multiply"
	opDivide              = "Divide"
	opLinearCombine       = "LinearCombine"
	opScale               = "Scale"
	opAddConstant         = "AddConstant"
	opThreshold           = "Threshold"
	opAbs                 = "Abs"
	opSquare              = "Square"
	opSqrt                = "Sqrt"
	opLog                 = "Log"
	opFloor               = "Floor"
	opStretch             = "Stretch"
	opNormalize           = "Normalize"
	opNormalizeMeanStdDev = "NormalizeMeanStdDev"
)

// ewBinary writes f(a,b) into dst for every coordinate.
func ewBinary(op string, dst, a, b *Buffer, f func(x, y float32) float32) error {
	if err := ValidateSameShape(dst, a, b); err != nil {
		return opErrorf(op, err)
	}

	// Fast path: three dense row-major runs.
	if dst.contiguous() && a.contiguous() && b.contiguous() {
		d, x, y := dst.flat(), a.flat(), b.flat()
		for i := range d {
			d[i] = f(x[i], y[i])
		}

		return nil
	}

	for r := 0; r < dst.h; r++ {
		for c := 0; c < dst.w; c++ {
			dst.SetFast(r, c, f(a.AtFast(r, c), b.AtFast(r, c)))
		}
	}

	return nil
}

// ewUnary writes f(src) into dst for every coordinate.
func ewUnary(op string, dst, src *Buffer, f func(x float32) float32) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return opErrorf(op, err)
	}

	if dst.contiguous() && src.contiguous() {
		d, x := dst.flat(), src.flat()
		for i := range d {
			d[i] = f(x[i])
		}

		return nil
	}

	for r := 0; r < dst.h; r++ {
		for c := 0; c < dst.w; c++ {
			dst.SetFast(r, c, f(src.AtFast(r, c)))
		}
	}

	return nil
}

// Add sets dst = a + b.
func Add(dst, a, b *Buffer) error {
	return ewBinary(opAdd, dst, a, b, func(x, y float32) float32 { return x + y })
}

// Subtract sets dst = a - b.
func Subtract(dst, a, b *Buffer) error {
	return ewBinary(opSubtract, dst, a, b, func(x, y float32) float32 { return x - y })
}

// Multiply sets dst = a * b (Hadamard product).
func Multiply(dst, a, b *Buffer) error {
	return ewBinary(opMultiply, dst, a, b, func(x, y float32) float32 { return x * y })
}

// Divide sets dst = a / b, except that where b is exactly 0 the sample of a
// is copied through unchanged.
func Divide(dst, a, b *Buffer) error {
	return ewBinary(opDivide, dst, a, b, func(x, y float32) float32 {
		if y == 0 {
			return x
		}

		return x / y
	})
}

// LinearCombine sets dst = wa*a + wb*b, evaluated in float64.
func LinearCombine(dst *Buffer, wa float64, a *Buffer, wb float64, b *Buffer) error {
	return ewBinary(opLinearCombine, dst, a, b, func(x, y float32) float32 {
		return float32(wa*float64(x) + wb*float64(y))
	})
}

// Scale sets dst = k * src.
//
// Rounding: k is rounded to float32 before the product, so the result is
// float32(k)·src rounded once. AddConstant, LinearCombine and Normalize
// instead round only the final float64 result.
//
// Implementation: copy (skipped when dst is src) followed by an in-place
// blas32.Scal per row, so arbitrary strides are honoured.
func Scale(dst, src *Buffer, k float64) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return opErrorf(opScale, err)
	}
	if !Aliased(dst, src) {
		if err := dst.CopyFrom(src); err != nil {
			return opErrorf(opScale, err)
		}
	}
	// blas32 works in float32 throughout.
	for r := 0; r < dst.h; r++ {
		blas32.Scal(float32(k), dst.rowVec(r))
	}

	return nil
}

// AddConstant sets dst = src + k.
func AddConstant(dst, src *Buffer, k float64) error {
	return ewUnary(opAddConstant, dst, src, func(x float32) float32 { return float32(float64(x) + k) })
}

// Threshold sets dst to 1 where src > t and 0 elsewhere.
func Threshold(dst, src *Buffer, t float64) error {
	return ewUnary(opThreshold, dst, src, func(x float32) float32 {
		if float64(x) > t {
			return 1
		}

		return 0
	})
}

// Abs sets dst = |src|.
func Abs(dst, src *Buffer) error {
	return ewUnary(opAbs, dst, src, func(x float32) float32 { return float32(math.Abs(float64(x))) })
}

// Square sets dst = src².
func Square(dst, src *Buffer) error {
	return ewUnary(opSquare, dst, src, func(x float32) float32 { return x * x })
}

// Sqrt sets dst = √src. Negative samples become NaN.
func Sqrt(dst, src *Buffer) error {
	return ewUnary(opSqrt, dst, src, func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
}

// Log sets dst = ln(src). Zero becomes -Inf, negatives NaN.
func Log(dst, src *Buffer) error {
	return ewUnary(opLog, dst, src, func(x float32) float32 { return float32(math.Log(float64(x))) })
}

// Floor sets dst = ⌊src + offset⌋.
func Floor(dst, src *Buffer, offset float64) error {
	return ewUnary(opFloor, dst, src, func(x float32) float32 { return float32(math.Floor(float64(x) + offset)) })
}

// Stretch linearly maps the current [min,max] of src onto [lo,hi]:
//
//	dst = lo + (hi-lo) * ((src - min) / (max - min))
//
// The source range is measured before anything is written, so dst may be src.
// A flat source divides 0 by 0 and yields NaN everywhere.
func Stretch(dst, src *Buffer, lo, hi float64) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return opErrorf(opStretch, err)
	}
	curMin, curMax := src.Range()
	span := curMax - curMin

	return ewUnary(opStretch, dst, src, func(x float32) float32 {
		return float32(lo + (hi-lo)*((float64(x)-curMin)/span))
	})
}

// Normalize divides every sample by √(Σ src²). An all-zero source yields NaN.
func Normalize(dst, src *Buffer) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return opErrorf(opNormalize, err)
	}
	factor := math.Sqrt(src.SumOfSquares())

	return ewUnary(opNormalize, dst, src, func(x float32) float32 { return float32(float64(x) / factor) })
}

// NormalizeMeanStdDev shifts and scales src so that dst has the given mean
// and population standard deviation. A flat source yields NaN.
func NormalizeMeanStdDev(dst, src *Buffer, mean, stddev float64) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return opErrorf(opNormalizeMeanStdDev, err)
	}
	curMean, curStd := src.Mean(), src.StdDev()
	factor := stddev / curStd

	return ewUnary(opNormalizeMeanStdDev, dst, src, func(x float32) float32 {
		return float32((float64(x)-curMean)*factor + mean)
	})
}
