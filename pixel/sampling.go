// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - Boundary-aware reads: mirror reflection for integer coordinates and
//     4-tap bilinear interpolation for fractional ones.
//
// Design:
//   - AtReflect folds with period 2·dim, mirroring about the edge sample:
//     index -1 reads 1, index W reads W-1.
//   - BilinearReflect folds fractional coordinates with period 2·(dim-1) and
//     then uses the edge sample's rule: for a folded x ≥ dim the mirror is
//     dim-(1+x-dim). It then steps to the ceiling neighbour only when that
//     neighbour exists. These rules match the sampler the detectors were
//     tuned against and are kept bit-for-bit.

package pixel

import (
	"fmt"
	"math"
)

// reflectIndex folds an arbitrary integer coordinate into [0,n).
func reflectIndex(i, n int) int {
	i %= 2 * n
	if i < 0 {
		i = -i
	}
	if i >= n {
		i = n - (1 + i - n)
	}

	return i
}

// reflectCoord folds a fractional coordinate into [0,n).
// A dimension of 1 has a zero period and always folds to 0, as do non-finite inputs.
func reflectCoord(x float64, n int) float64 {
	if n == 1 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	if x < 0 {
		x = -x
	}
	x = math.Mod(x, float64(2*(n-1)))
	if x >= float64(n) {
		x = float64(n) - (1 + x - float64(n))
	}

	return x
}

// AtReflect returns the sample at (row,col) after mirroring both coordinates
// into range. It never fails: in-range coordinates read the sample directly.
//
// Complexity: O(1).
func (b *Buffer) AtReflect(row, col int) float32 {
	return b.data[b.index(reflectIndex(row, b.h), reflectIndex(col, b.w))]
}

// Bilinear interpolates at a fractional (row,col).
//
// Contract: 0 ≤ row ≤ H-1 and 0 ≤ col ≤ W-1 (NaN is outside).
// Integer coordinates return the stored sample exactly.
//
// Implementation:
//
//	Stage 1: floor/ceil per axis; step is 1 only when floor != ceil.
//	Stage 2: blend along columns on the floor and floor+step rows.
//	Stage 3: blend the two row results.
//
// Errors: ErrOutOfRange if the contract is violated.
func (b *Buffer) Bilinear(row, col float64) (float64, error) {
	if !(row >= 0 && row <= float64(b.h-1) && col >= 0 && col <= float64(b.w-1)) {
		return 0, fmt.Errorf("Buffer.Bilinear(%g,%g) on %dx%d: %w", row, col, b.w, b.h, ErrOutOfRange)
	}

	r0, c0 := math.Floor(row), math.Floor(col)
	rStep, cStep := 0, 0
	if r0 != math.Ceil(row) {
		rStep = 1
	}
	if c0 != math.Ceil(col) {
		cStep = 1
	}

	return b.blend(int(r0), int(c0), rStep, cStep, row-r0, col-c0), nil
}

// BilinearReflect interpolates at any (row,col) after folding each coordinate
// with the fractional reflect rule. It never fails.
func (b *Buffer) BilinearReflect(row, col float64) float64 {
	row = reflectCoord(row, b.h)
	col = reflectCoord(col, b.w)

	r0, c0 := math.Floor(row), math.Floor(col)
	rStep, cStep := 0, 0
	if rc := math.Ceil(row); r0 != rc && int(rc) < b.h {
		rStep = 1
	}
	if cc := math.Ceil(col); c0 != cc && int(cc) < b.w {
		cStep = 1
	}

	return b.blend(int(r0), int(c0), rStep, cStep, row-r0, col-c0)
}

// blend is the shared 4-tap kernel; (r,c) and (r+rStep,c+cStep) must be in range.
func (b *Buffer) blend(r, c, rStep, cStep int, rRem, cRem float64) float64 {
	v00 := float64(b.AtFast(r, c))
	v01 := float64(b.AtFast(r, c+cStep))
	v10 := float64(b.AtFast(r+rStep, c))
	v11 := float64(b.AtFast(r+rStep, c+cStep))

	up := (1-cRem)*v00 + cRem*v01
	down := (1-cRem)*v10 + cRem*v11

	return (1-rRem)*up + rRem*down
}
