// SPDX-License-Identifier: MIT
// Package: convolve
//
// Purpose:
//   - Kernel builders: separable-in-form anisotropic Gaussian and the 1×1 identity.

package convolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalespace/pixel"
)

// Gaussian returns a width×height kernel sampled from
//
//	scale · exp(-½ · ((r-cr)²/varRow + (c-cc)²/varCol))
//
// with centre (cr,cc) = ((height-1)/2, (width-1)/2), so odd sizes centre on a
// sample and even sizes between two. With normalize the kernel is rescaled
// to sum to 1 (scale then cancels out).
//
// Errors: pixel.ErrInvalidDimensions; pixel.ErrBadArgument if a variance is
// not strictly positive.
func Gaussian(width, height int, scale, varCol, varRow float64, normalize bool) (*pixel.Buffer, error) {
	k, err := pixel.New(width, height)
	if err != nil {
		return nil, convolveErrorf("convolve.Gaussian", err)
	}
	if err = GaussianInto(k, scale, varCol, varRow, normalize); err != nil {
		return nil, err
	}

	return k, nil
}

// GaussianInto fills an existing kernel buffer; see Gaussian.
func GaussianInto(k *pixel.Buffer, scale, varCol, varRow float64, normalize bool) error {
	const op = "convolve.GaussianInto"
	if err := pixel.ValidateNotNil(k); err != nil {
		return convolveErrorf(op, err)
	}
	if !(varCol > 0) || !(varRow > 0) {
		return convolveErrorf(op, fmt.Errorf("variance (%g,%g): %w", varCol, varRow, pixel.ErrBadArgument))
	}

	cr := float64(k.Height()-1) / 2
	cc := float64(k.Width()-1) / 2
	var sum float64
	for r := 0; r < k.Height(); r++ {
		dr := float64(r) - cr
		for c := 0; c < k.Width(); c++ {
			dc := float64(c) - cc
			v := scale * math.Exp(-0.5*(dr*dr/varRow+dc*dc/varCol))
			k.SetFast(r, c, float32(v))
			sum += v
		}
	}
	if normalize {
		if err := pixel.Scale(k, k, 1/sum); err != nil {
			return convolveErrorf(op, err)
		}
	}

	return nil
}

// Identity returns the 1×1 kernel [[1]].
func Identity() *pixel.Buffer {
	k, _ := pixel.New(1, 1)
	k.SetFast(0, 0, 1)

	return k
}
