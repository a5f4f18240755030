// SPDX-License-Identifier: MIT
// Package: pyramid
//
// Purpose:
//   - Laplacian pyramid construction and its exact inverse, in allocating
//     and in-place forms.
//
// Design:
//   - Both directions go through laplaceLevel:
//       dst(r,c) = fine(r,c) + scale · coarse(r/2, c/2)
//     with scale -1 (analysis) and +1 (synthesis). The update is elementwise
//     in fine, so dst may be fine itself; coarse must be a different level.
//   - In-place analysis walks fine→coarse (each coarse level is still
//     Gaussian when it is read); in-place synthesis walks coarse→fine (each
//     coarse level is already reconstructed when it is read).

package pyramid

import (
	"github.com/katalvlaran/scalespace/pixel"
)

// laplaceLevel writes fine + scale·Expand(coarse) into dst.
func laplaceLevel(dst, fine *pixel.Buffer, scale float64, coarse *pixel.Buffer) error {
	if err := pixel.ValidateSameShape(fine, dst); err != nil {
		return err
	}
	if err := validateExpand(fine, coarse); err != nil {
		return err
	}
	if err := pixel.ValidateNoAlias(dst, coarse); err != nil {
		return err
	}
	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			v := float64(fine.AtFast(r, c)) + scale*float64(coarse.AtFast(r/2, c/2))
			dst.SetFast(r, c, float32(v))
		}
	}

	return nil
}

// LaplacianFromGaussian returns a new Laplacian pyramid of the same length:
// lap[i-1] = g[i-1] - Expand(g[i]) and lap[last] = g[last].
//
// Errors: pixel.ErrBadArgument for an empty or non-Gaussian pyramid,
// pixel.ErrDimensionMismatch for a broken level-size chain.
func LaplacianFromGaussian(g *Pyramid) (*Pyramid, error) {
	const op = "pyramid.LaplacianFromGaussian"
	if err := g.validate(Gaussian); err != nil {
		return nil, pyramidErrorf(op, err)
	}
	lap := g.Clone()
	if err := LaplacianInPlace(lap); err != nil {
		return nil, pyramidErrorf(op, err)
	}

	return lap, nil
}

// LaplacianInPlace converts a Gaussian pyramid into its Laplacian pyramid,
// overwriting the levels and retagging p.
func LaplacianInPlace(p *Pyramid) error {
	const op = "pyramid.LaplacianInPlace"
	if err := p.validate(Gaussian); err != nil {
		return pyramidErrorf(op, err)
	}
	for i := 1; i < len(p.Levels); i++ {
		if err := laplaceLevel(p.Levels[i-1], p.Levels[i-1], -1, p.Levels[i]); err != nil {
			return pyramidErrorf(op, err)
		}
	}
	p.Kind = Laplacian

	return nil
}

// Reconstruct returns the Gaussian pyramid a Laplacian pyramid was made
// from: g[last] = lap[last], then g[i] = lap[i] + Expand(g[i+1]) downwards.
func Reconstruct(lap *Pyramid) (*Pyramid, error) {
	const op = "pyramid.Reconstruct"
	if err := lap.validate(Laplacian); err != nil {
		return nil, pyramidErrorf(op, err)
	}
	g := lap.Clone()
	if err := ReconstructInPlace(g); err != nil {
		return nil, pyramidErrorf(op, err)
	}

	return g, nil
}

// ReconstructInPlace converts a Laplacian pyramid back into its Gaussian
// pyramid, overwriting the levels and retagging p.
func ReconstructInPlace(p *Pyramid) error {
	const op = "pyramid.ReconstructInPlace"
	if err := p.validate(Laplacian); err != nil {
		return pyramidErrorf(op, err)
	}
	for i := len(p.Levels) - 2; i >= 0; i-- {
		if err := laplaceLevel(p.Levels[i], p.Levels[i], 1, p.Levels[i+1]); err != nil {
			return pyramidErrorf(op, err)
		}
	}
	p.Kind = Gaussian

	return nil
}

// NewLaplacian builds the Laplacian pyramid of src directly.
func NewLaplacian(src *pixel.Buffer, minSize int) (*Pyramid, error) {
	p, err := NewGaussian(src, minSize)
	if err != nil {
		return nil, err
	}
	if err = LaplacianInPlace(p); err != nil {
		return nil, err
	}

	return p, nil
}
