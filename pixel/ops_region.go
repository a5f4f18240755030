// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - Value-selective and region operations that sit next to the plain
//     elementwise set: RectifiedPair, Core, Screen, Insert, Sub, Integral.

package pixel

import "fmt"

// Screener decides per pixel whether a sample is kept by Screen.
type Screener interface {
	Include(col, row int, v float32) bool
}

// ScreenerFunc adapts a plain function to Screener.
type ScreenerFunc func(col, row int, v float32) bool

// Include calls f(col, row, v).
func (f ScreenerFunc) Include(col, row int, v float32) bool { return f(col, row, v) }

// RectifiedPair splits src into its positive and negative halves (each doubled):
//
//	pos = |v| + v
//	neg = |v| - v
//
// pos and neg must be distinct; either may alias src.
func RectifiedPair(pos, neg, src *Buffer) error {
	const op = "RectifiedPair"
	if err := ValidateSameShape(src, pos, neg); err != nil {
		return opErrorf(op, err)
	}
	if Aliased(pos, neg) {
		return opErrorf(op, ErrAliased)
	}
	for r := 0; r < src.h; r++ {
		for c := 0; c < src.w; c++ {
			v := src.AtFast(r, c)
			a := v
			if a < 0 {
				a = -a
			}
			pos.SetFast(r, c, a+v)
			neg.SetFast(r, c, a-v)
		}
	}

	return nil
}

// Core keeps the samples of src that lie outside [low,high] and zeroes the
// ones inside. It returns the number of samples kept.
func Core(dst, src *Buffer, low, high float32) (int, error) {
	if err := ValidateSameShape(dst, src); err != nil {
		return 0, opErrorf("Core", err)
	}
	kept := 0
	for r := 0; r < src.h; r++ {
		for c := 0; c < src.w; c++ {
			v := src.AtFast(r, c)
			if v < low || v > high {
				dst.SetFast(r, c, v)
				kept++
			} else {
				dst.SetFast(r, c, 0)
			}
		}
	}

	return kept, nil
}

// Screen copies src into dst, replacing every sample the screener rejects
// with fill. It returns the number of samples kept.
func Screen(dst, src *Buffer, s Screener, fill float32) (int, error) {
	if err := ValidateSameShape(dst, src); err != nil {
		return 0, opErrorf("Screen", err)
	}
	if s == nil {
		return 0, opErrorf("Screen", fmt.Errorf("nil screener: %w", ErrBadArgument))
	}
	kept := 0
	for r := 0; r < src.h; r++ {
		for c := 0; c < src.w; c++ {
			v := src.AtFast(r, c)
			if s.Include(c, r, v) {
				dst.SetFast(r, c, v)
				kept++
			} else {
				dst.SetFast(r, c, fill)
			}
		}
	}

	return kept, nil
}

// Insert copies src into dst with its (0,0) sample landing at (row0,col0).
//
// Errors: ErrOutOfRange if src does not fit entirely inside dst.
func Insert(dst, src *Buffer, row0, col0 int) error {
	const op = "Insert"
	if err := ValidateNotNil(dst, src); err != nil {
		return opErrorf(op, err)
	}
	if row0 < 0 || col0 < 0 || row0+src.h > dst.h || col0+src.w > dst.w {
		return opErrorf(op, fmt.Errorf("%dx%d at (%d,%d) into %dx%d: %w",
			src.w, src.h, row0, col0, dst.w, dst.h, ErrOutOfRange))
	}
	if err := ValidateNoAlias(dst, src); err != nil {
		return opErrorf(op, err)
	}
	for r := 0; r < src.h; r++ {
		for c := 0; c < src.w; c++ {
			dst.SetFast(row0+r, col0+c, src.AtFast(r, c))
		}
	}

	return nil
}

// Sub returns a contiguous copy of the height×width region whose top-left
// sample is (row0,col0).
//
// Errors: ErrInvalidDimensions, ErrOutOfRange.
func (b *Buffer) Sub(row0, col0, height, width int) (*Buffer, error) {
	out, err := New(width, height)
	if err != nil {
		return nil, opErrorf("Buffer.Sub", err)
	}
	if row0 < 0 || col0 < 0 || row0+height > b.h || col0+width > b.w {
		return nil, opErrorf("Buffer.Sub", fmt.Errorf("%dx%d at (%d,%d) from %dx%d: %w",
			width, height, row0, col0, b.w, b.h, ErrOutOfRange))
	}
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			out.SetFast(r, c, b.AtFast(row0+r, col0+c))
		}
	}

	return out, nil
}

// Integral builds the summed-area table of src into dst, which must be
// (W+1)×(H+1). Row 0 and column 0 of dst are zero and
// dst(r+1,c+1) = Σ src(i,j) for i ≤ r, j ≤ c.
//
// Running sums are carried in float64 and rounded once per output sample.
func Integral(dst, src *Buffer) error {
	const op = "Integral"
	if err := ValidateNotNil(src); err != nil {
		return opErrorf(op, err)
	}
	if err := ValidateShape(dst, src.w+1, src.h+1); err != nil {
		return opErrorf(op, err)
	}
	if err := ValidateNoAlias(dst, src); err != nil {
		return opErrorf(op, err)
	}

	above := make([]float64, src.w+1)
	for c := 0; c <= src.w; c++ {
		dst.SetFast(0, c, 0)
	}
	for r := 0; r < src.h; r++ {
		dst.SetFast(r+1, 0, 0)
		var rowSum float64
		for c := 0; c < src.w; c++ {
			rowSum += float64(src.AtFast(r, c))
			above[c+1] += rowSum
			dst.SetFast(r+1, c+1, float32(above[c+1]))
		}
	}

	return nil
}
