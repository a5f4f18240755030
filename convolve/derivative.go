// SPDX-License-Identifier: MIT

package convolve

import (
	"math"

	"github.com/katalvlaran/scalespace/pixel"
)

// RowDerivative writes the forward difference down the rows:
// dst(r,c) = src(r+1,c) - src(r,c). A ramp increasing downwards is positive.
// The last row of dst is left untouched.
func RowDerivative(dst, src *pixel.Buffer) error {
	return forwardDiff("convolve.RowDerivative", dst, src, 1, 0, false)
}

// ColDerivative writes the forward difference along the columns:
// dst(r,c) = src(r,c+1) - src(r,c). The last column of dst is left untouched.
func ColDerivative(dst, src *pixel.Buffer) error {
	return forwardDiff("convolve.ColDerivative", dst, src, 0, 1, false)
}

// AbsRowDerivative is RowDerivative with the magnitude of each difference.
func AbsRowDerivative(dst, src *pixel.Buffer) error {
	return forwardDiff("convolve.AbsRowDerivative", dst, src, 1, 0, true)
}

// AbsColDerivative is ColDerivative with the magnitude of each difference.
func AbsColDerivative(dst, src *pixel.Buffer) error {
	return forwardDiff("convolve.AbsColDerivative", dst, src, 0, 1, true)
}

// forwardDiff writes src(r+dr,c+dc) - src(r,c) over the positions where the
// neighbour exists.
func forwardDiff(op string, dst, src *pixel.Buffer, dr, dc int, abs bool) error {
	if err := pixel.ValidateSameShape(src, dst); err != nil {
		return convolveErrorf(op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return convolveErrorf(op, err)
	}
	for r := 0; r < src.Height()-dr; r++ {
		for c := 0; c < src.Width()-dc; c++ {
			d := src.AtFast(r+dr, c+dc) - src.AtFast(r, c)
			if abs {
				d = float32(math.Abs(float64(d)))
			}
			dst.SetFast(r, c, d)
		}
	}

	return nil
}
