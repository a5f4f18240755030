// SPDX-License-Identifier: MIT

// Package pyramid builds multi-resolution representations of a pixel.Buffer:
// 2× reduction with exact odd-edge rules, Gaussian pyramids, Laplacian
// pyramids and their lossless inverse.
//
// Level i+1 of every pyramid is HalfSize(level i), i.e. ceil(W/2)×ceil(H/2).
// The Laplacian and its reconstruction share one nearest-neighbour
// expansion (Expand), which is what makes
//
//	Reconstruct(LaplacianFromGaussian(NewGaussian(img, m)))
//
// reproduce NewGaussian(img, m) level by level up to float32 rounding.
//
// Arbitrary-size resampling (BilinearResample, ReduceSize) and affine
// warping (Warp, WarpCentered, WarpAbout) live alongside the pyramids.
package pyramid
