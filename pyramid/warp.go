// SPDX-License-Identifier: MIT
// Package: pyramid
//
// warp.go: affine resampling. Every destination sample is pulled from the
// source through an Affine map and read with BilinearReflect, so any map is
// accepted and out-of-range positions fold back into the image.
//
// Origins:
//   - Warp maps top-left-relative coordinates.
//   - WarpCentered maps coordinates relative to the centres (W/2, H/2) of
//     both buffers.
//   - WarpAbout takes the source centre explicitly.

package pyramid

import (
	"github.com/katalvlaran/scalespace"
	"github.com/katalvlaran/scalespace/pixel"
)

// Affine maps a destination position to a source position, both in
// (row, col) order:
//
//	srcRow = A[0][0]·row + A[0][1]·col + A[0][2]
//	srcCol = A[1][0]·row + A[1][1]·col + A[1][2]
type Affine [2][3]float64

// IdentityAffine returns the map that leaves positions unchanged.
func IdentityAffine() Affine {
	return Affine{{1, 0, 0}, {0, 1, 0}}
}

// Translation returns the map that reads the source dRow rows and dCol
// columns further along.
func Translation(dRow, dCol float64) Affine {
	return Affine{{1, 0, dRow}, {0, 1, dCol}}
}

// Apply maps (row, col) through a.
func (a Affine) Apply(row, col float64) (float64, float64) {
	return a[0][0]*row + a[0][1]*col + a[0][2],
		a[1][0]*row + a[1][1]*col + a[1][2]
}

// Warp fills dst with src sampled at a(r, c) for every dst position (r, c).
// dst and src may differ in size but must not alias.
func Warp(dst, src *pixel.Buffer, a Affine) error {
	if err := validateWarp("pyramid.Warp", dst, src); err != nil {
		return err
	}
	warp(dst, src, a, 0, 0, 0, 0)

	return nil
}

// WarpCentered is Warp with both coordinate frames centred: the dst offset
// from (dstH/2, dstW/2) is mapped through a and added to (srcH/2, srcW/2).
func WarpCentered(dst, src *pixel.Buffer, a Affine) error {
	if err := validateWarp("pyramid.WarpCentered", dst, src); err != nil {
		return err
	}
	warp(dst, src, a, float64(src.Height())/2, float64(src.Width())/2,
		float64(dst.Height())/2, float64(dst.Width())/2)

	return nil
}

// WarpAbout is WarpCentered with the source centre given by the caller.
func WarpAbout(dst, src *pixel.Buffer, centreRow, centreCol float64, a Affine) error {
	if err := validateWarp("pyramid.WarpAbout", dst, src); err != nil {
		return err
	}
	warp(dst, src, a, centreRow, centreCol, float64(dst.Height())/2, float64(dst.Width())/2)

	return nil
}

func validateWarp(op string, dst, src *pixel.Buffer) error {
	if err := pixel.ValidateNotNil(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}

	return nil
}

// warp maps (r - dstRow0, c - dstCol0) through a and offsets the result by
// (srcRow0, srcCol0).
func warp(dst, src *pixel.Buffer, a Affine, srcRow0, srcCol0, dstRow0, dstCol0 float64) {
	scalespace.Logger().Debug("warp",
		"src_w", src.Width(), "src_h", src.Height(), "dst_w", dst.Width(), "dst_h", dst.Height())
	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			sr, sc := a.Apply(float64(r)-dstRow0, float64(c)-dstCol0)
			dst.SetFast(r, c, float32(src.BilinearReflect(srcRow0+sr, srcCol0+sc)))
		}
	}
}
