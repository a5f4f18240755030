// SPDX-License-Identifier: MIT
// Package: detect
//
// localmax.go: mask narrowing by 3×3 neighbourhood comparison.

package detect

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scalespace/pixel"
)

// Polarity selects maxima (Positive) or minima (Negative).
type Polarity int

const (
	Positive Polarity = 1
	Negative Polarity = -1
)

// String returns "+" or "-".
func (p Polarity) String() string {
	if p == Negative {
		return "-"
	}

	return "+"
}

// candidateTolerance is how close to 1 a mask sample must be to count as set.
const candidateTolerance = 0.01

// isCandidate reports whether a mask sample counts as set.
func isCandidate(v float32) bool {
	return math.Abs(float64(v)-1) < candidateTolerance
}

// LocalMax clears every candidate in mask that is not an extremum of ref
// relative to compareTo.
//
// For each interior pixel whose mask value is within 0.01 of 1:
//
//	reference = polarity · ref(r,c)
//	clear if reference < cfg.Floor
//	clear if reference < multiplier · polarity · compareTo(n) for any of the
//	      9 positions n of the 3×3 block, skipping the centre exactly when
//	      ref and compareTo are the same buffer
//
// Border pixels of mask are always set to 0. Non-candidate interior pixels
// are left untouched, so a pixel ends as 1 only if it passes every call
// made against it. Comparisons are strict: ties survive.
//
// Errors: ErrBadConfig, pixel.ErrNilBuffer, pixel.ErrDimensionMismatch, and
// pixel.ErrAliased if mask shares storage with ref or compareTo.
func LocalMax(cfg Config, ref *pixel.Buffer, polarity Polarity, multiplier float64, compareTo, mask *pixel.Buffer) error {
	const op = "detect.LocalMax"
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateSameShape(ref, compareTo, mask); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := pixel.ValidateNoAlias(mask, ref, compareTo); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	pol := float64(polarity)
	mult := multiplier * pol
	isSelf := ref == compareTo
	w, h := ref.Shape()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if r == 0 || c == 0 || r == h-1 || c == w-1 {
				mask.SetFast(r, c, 0)
				continue
			}
			if !isCandidate(mask.AtFast(r, c)) {
				continue
			}
			reference := pol * float64(ref.AtFast(r, c))
			if reference < cfg.Floor || !beatsNeighbours(reference, mult, compareTo, r, c, isSelf) {
				mask.SetFast(r, c, 0)
			}
		}
	}

	return nil
}

// beatsNeighbours reports whether reference >= mult·compareTo over the 3×3
// block around (r,c), skipping the centre when skipCentre is set.
func beatsNeighbours(reference, mult float64, compareTo *pixel.Buffer, r, c int, skipCentre bool) bool {
	for dr := r - 1; dr <= r+1; dr++ {
		for dc := c - 1; dc <= c+1; dc++ {
			if skipCentre && dr == r && dc == c {
				continue
			}
			if reference < mult*float64(compareTo.AtFast(dr, dc)) {
				return false
			}
		}
	}

	return true
}
