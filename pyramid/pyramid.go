// SPDX-License-Identifier: MIT
// Package: pyramid
//
// Purpose:
//   - Pyramid, a tagged list of levels (Gaussian or Laplacian), and the
//     Gaussian builder.
//
// Stop rule:
//   - Levels are added until both dimensions of the newest level are
//     <= minSize, that level included. A 1×1 level cannot shrink further and
//     always ends the pyramid, so every minSize (even < 1) terminates.
//   - A source already within minSize yields a single-level pyramid.

package pyramid

import (
	"fmt"

	"github.com/katalvlaran/scalespace"
	"github.com/katalvlaran/scalespace/pixel"
)

// Kind tags what a pyramid's levels hold.
type Kind int

const (
	// Gaussian levels are successively reduced copies of the image.
	Gaussian Kind = iota + 1
	// Laplacian levels are band-pass residuals; the last level is the coarse Gaussian.
	Laplacian
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Laplacian:
		return "laplacian"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Size is a level's width and height.
type Size struct {
	W, H int
}

// Pyramid is an ordered list of levels, finest first.
type Pyramid struct {
	Kind   Kind
	Levels []*pixel.Buffer
}

// Len returns the number of levels.
func (p *Pyramid) Len() int { return len(p.Levels) }

// Level returns level i.
//
// Errors: pixel.ErrOutOfRange if i is not a valid level index.
func (p *Pyramid) Level(i int) (*pixel.Buffer, error) {
	if i < 0 || i >= len(p.Levels) {
		return nil, fmt.Errorf("Pyramid.Level(%d) of %d: %w", i, len(p.Levels), pixel.ErrOutOfRange)
	}

	return p.Levels[i], nil
}

// Clone returns a deep copy.
func (p *Pyramid) Clone() *Pyramid {
	out := &Pyramid{Kind: p.Kind, Levels: make([]*pixel.Buffer, len(p.Levels))}
	for i, l := range p.Levels {
		out.Levels[i] = l.Clone()
	}

	return out
}

// validate checks that p is non-empty, of the wanted kind, and that every
// level is HalfSize of the one before.
func (p *Pyramid) validate(want Kind) error {
	if p == nil || len(p.Levels) == 0 {
		return fmt.Errorf("empty pyramid: %w", pixel.ErrBadArgument)
	}
	if p.Kind != want {
		return fmt.Errorf("pyramid kind %v, want %v: %w", p.Kind, want, pixel.ErrBadArgument)
	}
	if err := pixel.ValidateNotNil(p.Levels...); err != nil {
		return err
	}
	for i := 1; i < len(p.Levels); i++ {
		if err := validateExpand(p.Levels[i-1], p.Levels[i]); err != nil {
			return fmt.Errorf("level %d: %w", i, err)
		}
	}

	return nil
}

// Sizes lists the level sizes NewGaussian would produce for a width×height
// source under the stop rule.
func Sizes(width, height, minSize int) []Size {
	sizes := []Size{{width, height}}
	for !(width <= minSize && height <= minSize) && (width > 1 || height > 1) {
		width, height = HalfSize(width, height)
		sizes = append(sizes, Size{width, height})
	}

	return sizes
}

// NewGaussian builds the Gaussian pyramid of src: level 0 is a copy and each
// further level is ReduceHalf of the previous one.
//
// Errors: pixel.ErrNilBuffer.
// Complexity: O(W*H) time and memory (geometric series, ≈ 4/3·W·H samples).
func NewGaussian(src *pixel.Buffer, minSize int) (*Pyramid, error) {
	const op = "pyramid.NewGaussian"
	if err := pixel.ValidateNotNil(src); err != nil {
		return nil, pyramidErrorf(op, err)
	}

	sizes := Sizes(src.Width(), src.Height(), minSize)
	p := &Pyramid{Kind: Gaussian, Levels: make([]*pixel.Buffer, len(sizes))}
	p.Levels[0] = src.Clone()
	for i := 1; i < len(sizes); i++ {
		next, err := pixel.New(sizes[i].W, sizes[i].H)
		if err != nil {
			return nil, pyramidErrorf(op, err)
		}
		if err = ReduceHalf(next, p.Levels[i-1]); err != nil {
			return nil, pyramidErrorf(op, err)
		}
		p.Levels[i] = next
	}
	scalespace.Logger().Debug("gaussian pyramid built",
		"width", src.Width(), "height", src.Height(), "minSize", minSize, "levels", len(sizes))

	return p, nil
}
