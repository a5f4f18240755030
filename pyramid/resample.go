// SPDX-License-Identifier: MIT
// Package: pyramid
//
// Purpose:
//   - Arbitrary-size resampling: BilinearResample for a single pass and
//     ReduceSize, which halves with ReduceHalf while that still covers the
//     target and finishes bilinearly.
//   - ReferenceSize, the aspect-preserving fit of an image into a
//     landscape/portrait working frame.

package pyramid

import (
	"math"

	"github.com/katalvlaran/scalespace/pixel"
)

// resampleInset keeps the last sample position strictly inside the source
// so Bilinear never hits its upper contract edge through rounding.
const resampleInset = 1.001

// BilinearResample fills dst by sampling src on a uniform grid running from
// 0 to (srcDim - 1.001) along each axis. A dimension of 1 on either side
// samples coordinate 0.
func BilinearResample(dst, src *pixel.Buffer) error {
	const op = "pyramid.BilinearResample"
	if err := pixel.ValidateNotNil(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}
	if err := pixel.ValidateNoAlias(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}

	rowDelta := resampleDelta(src.Height(), dst.Height())
	colDelta := resampleDelta(src.Width(), dst.Width())
	for r := 0; r < dst.Height(); r++ {
		for c := 0; c < dst.Width(); c++ {
			v, err := src.Bilinear(float64(r)*rowDelta, float64(c)*colDelta)
			if err != nil {
				return pyramidErrorf(op, err)
			}
			dst.SetFast(r, c, float32(v))
		}
	}

	return nil
}

// resampleDelta is the source step per destination sample along one axis.
func resampleDelta(srcDim, dstDim int) float64 {
	if srcDim == 1 || dstDim == 1 {
		return 0
	}

	return (float64(srcDim) - resampleInset) / float64(dstDim-1)
}

// ReduceSize resamples src into dst. When dst is smaller than src along both
// axes, src is first halved with ReduceHalf for as long as the half still
// covers dst, which limits aliasing; the remainder is bilinear.
func ReduceSize(dst, src *pixel.Buffer) error {
	const op = "pyramid.ReduceSize"
	if err := pixel.ValidateNotNil(dst, src); err != nil {
		return pyramidErrorf(op, err)
	}

	cur := src
	if dst.Width() < src.Width() && dst.Height() < src.Height() {
		for {
			hw, hh := HalfSize(cur.Shape())
			if hw < dst.Width() || hh < dst.Height() || (hw == cur.Width() && hh == cur.Height()) {
				break
			}
			next, err := pixel.New(hw, hh)
			if err != nil {
				return pyramidErrorf(op, err)
			}
			if err = ReduceHalf(next, cur); err != nil {
				return pyramidErrorf(op, err)
			}
			cur = next
		}
	}

	return BilinearResample(dst, cur)
}

// ReferenceSize fits a width×height image into a longSide×shortSide frame
// (oriented to match the image) without changing its aspect ratio. The
// limiting axis gets the frame size; the other is floored.
func ReferenceSize(width, height, longSide, shortSide int) (int, int) {
	targetW, targetH := shortSide, longSide
	if width > height {
		targetW, targetH = longSide, shortSide
	}

	imageAspect := float64(width) / float64(height)
	frameAspect := float64(targetW) / float64(targetH)
	if imageAspect < frameAspect {
		return int(math.Floor(float64(targetH) * imageAspect)), targetH
	}

	return targetW, int(math.Floor(float64(targetW) / imageAspect))
}
