// SPDX-License-Identifier: MIT
// Package pixel: sentinel error set.
// This file defines ONLY package-level sentinel errors used across pixel and
// the packages layered on it (convolve, pyramid, detect). Algorithms return
// these sentinels (optionally wrapped with call-site context) and tests match
// them with errors.Is. Nothing panics on user-triggered error conditions.

package pixel

import (
	"errors"
	"fmt"
)

// NOTE ON THE TAXONOMY
// --------------------
// ErrContractViolation is the root of every "caller broke a documented
// precondition" error. The specific sentinels below wrap it, so both
//
//	errors.Is(err, ErrDimensionMismatch)
//	errors.Is(err, ErrContractViolation)
//
// hold for a size mismatch. ErrOutOfRange stands alone: it reports a bad
// coordinate on a checked accessor. Degenerate numeric input (division by
// zero, flat ranges) is not an error; it follows the documented per-op policy.

var (
	// ErrContractViolation is the umbrella for precondition failures.
	ErrContractViolation = errors.New("pixel: contract violation")

	// ErrOutOfRange indicates that a coordinate lies outside the buffer, or
	// that a bilinear sample was requested outside [0,H-1]×[0,W-1].
	ErrOutOfRange = errors.New("pixel: index out of range")

	// ErrInvalidDimensions indicates non-positive width or height.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrContractViolation)

	// ErrDimensionMismatch indicates operands whose sizes do not satisfy the
	// operation's size rule (equal sizes for elementwise ops, exact output
	// sizes for window ops).
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrContractViolation)

	// ErrAliased indicates that a window-based operation was given an output
	// buffer that shares storage with one of its inputs.
	ErrAliased = fmt.Errorf("%w: output aliases an input", ErrContractViolation)

	// ErrBadStrides indicates a non-positive stride or a negative offset.
	ErrBadStrides = fmt.Errorf("%w: strides must be >= 1 and offset >= 0", ErrContractViolation)

	// ErrShortBacking indicates a backing slice too short for the geometry.
	ErrShortBacking = fmt.Errorf("%w: backing slice too short", ErrContractViolation)

	// ErrNilBuffer indicates a nil *Buffer argument.
	ErrNilBuffer = fmt.Errorf("%w: nil buffer", ErrContractViolation)

	// ErrBadArgument indicates a scalar argument outside its documented
	// domain (a step of zero, a channel index past the pixel, ...).
	ErrBadArgument = fmt.Errorf("%w: bad argument", ErrContractViolation)
)

// bufferErrorf wraps err with the method name and the offending coordinate.
func bufferErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Buffer.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with the name of the failing operation.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
