// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - One canonical home for the guards every operation runs before touching
//     samples: nil, equal shape, exact shape, and output/input aliasing.
//   - Return sentinels wrapped only with the validator tag so call sites can
//     add their own operation name uniformly.
//
// Note:
//   - Composite validators follow a fixed order: NotNil → Shape → Alias.

package pixel

import "fmt"

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every buffer is non-nil.
//
// Returns ErrNilBuffer naming the first nil argument position.
func ValidateNotNil(bufs ...*Buffer) error {
	for i, b := range bufs {
		if b == nil {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil(arg %d)", i), ErrNilBuffer)
		}
	}

	return nil
}

// ValidateSameShape ensures all buffers are non-nil and share the shape of the first.
//
// Returns ErrNilBuffer or ErrDimensionMismatch.
func ValidateSameShape(first *Buffer, rest ...*Buffer) error {
	if err := ValidateNotNil(first); err != nil {
		return err
	}
	if err := ValidateNotNil(rest...); err != nil {
		return err
	}
	for _, b := range rest {
		if b.w != first.w || b.h != first.h {
			return validatorErrorf("ValidateSameShape",
				fmt.Errorf("%dx%d vs %dx%d: %w", first.w, first.h, b.w, b.h, ErrDimensionMismatch))
		}
	}

	return nil
}

// ValidateShape ensures b is non-nil and exactly width×height.
func ValidateShape(b *Buffer, width, height int) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.w != width || b.h != height {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("have %dx%d, want %dx%d: %w", b.w, b.h, width, height, ErrDimensionMismatch))
	}

	return nil
}

// ValidateNoAlias ensures dst shares no storage with any input.
//
// Implementation: two buffers alias when they are the same value or wrap the
// same backing array (identical first-sample address). Nil inputs are ignored.
func ValidateNoAlias(dst *Buffer, inputs ...*Buffer) error {
	for _, in := range inputs {
		if in == nil || dst == nil {
			continue
		}
		if Aliased(dst, in) {
			return validatorErrorf("ValidateNoAlias", ErrAliased)
		}
	}

	return nil
}

// Aliased reports whether a and b share backing storage.
func Aliased(a, b *Buffer) bool {
	if a == b {
		return true
	}
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}

	return &a.data[0] == &b.data[0]
}
