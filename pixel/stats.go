// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - Whole-buffer reductions: Sum, SumOfSquares, Mean, Variance, StdDev, Min, Max.
//
// Determinism & Precision:
//   - Fixed row-major traversal. Every accumulation runs in float64 even though
//     samples are float32, so results do not depend on buffer size drift.
//   - SumOfSquares goes through blas32.DDot per row (float32 inputs,
//     float64 accumulator) and respects arbitrary column strides.
//   - Variance is the population variance about the mean (divide by W*H).

package pixel

import (
	"math"

	"gonum.org/v1/gonum/blas/blas32"
)

// Sum returns Σ v over all samples.
func (b *Buffer) Sum() float64 {
	var sum float64
	if b.contiguous() {
		for _, v := range b.flat() {
			sum += float64(v)
		}

		return sum
	}
	for r := 0; r < b.h; r++ {
		base := b.index(r, 0)
		for c := 0; c < b.w; c++ {
			sum += float64(b.data[base+c*b.colStride])
		}
	}

	return sum
}

// SumOfSquares returns Σ v² over all samples.
func (b *Buffer) SumOfSquares() float64 {
	var sum float64
	for r := 0; r < b.h; r++ {
		row := b.rowVec(r)
		sum += blas32.DDot(row, row)
	}

	return sum
}

// Mean returns Sum / (W*H).
func (b *Buffer) Mean() float64 {
	return b.Sum() / float64(b.Len())
}

// Variance returns the population variance Σ (v-mean)² / (W*H).
func (b *Buffer) Variance() float64 {
	mean := b.Mean()
	var acc float64
	b.Do(func(_, _ int, v float32) {
		d := float64(v) - mean
		acc += d * d
	})

	return acc / float64(b.Len())
}

// StdDev returns sqrt(Variance).
func (b *Buffer) StdDev() float64 {
	return math.Sqrt(b.Variance())
}

// Min returns the smallest sample.
func (b *Buffer) Min() float64 {
	lo := b.AtFast(0, 0)
	b.Do(func(_, _ int, v float32) {
		if v < lo {
			lo = v
		}
	})

	return float64(lo)
}

// Max returns the largest sample.
func (b *Buffer) Max() float64 {
	hi := b.AtFast(0, 0)
	b.Do(func(_, _ int, v float32) {
		if v > hi {
			hi = v
		}
	})

	return float64(hi)
}

// Range returns (Min, Max) in a single pass.
func (b *Buffer) Range() (float64, float64) {
	lo, hi := b.AtFast(0, 0), b.AtFast(0, 0)
	b.Do(func(_, _ int, v float32) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	})

	return float64(lo), float64(hi)
}
