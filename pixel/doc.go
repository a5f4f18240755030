// SPDX-License-Identifier: MIT

// Package pixel provides Buffer, a dense strided single-channel float32
// image, and the elementwise, statistical and sampling operations every other
// scalespace package is built from.
//
// A Buffer is addressed as (row, col) with element(r,c) located at
// offset + r·rowStride + c·colStride in its backing slice. Reads come in three
// flavours:
//
//	At / Set             checked; ErrOutOfRange outside the grid
//	AtFast / SetFast     unchecked; for loops bounded by Width/Height
//	AtReflect            mirrors any integer coordinate back into range
//
// Operations are plain functions taking the destination first:
//
//	pixel.Add(dst, a, b)
//	pixel.Scale(dst, src, 0.5)
//	pixel.Stretch(dst, dst, 0, 255) // in place
//
// Elementwise operations accept a destination that aliases an input.
// Reductions (Sum, Mean, Variance, ...) accumulate in float64.
//
// Errors are sentinels matched with errors.Is. All precondition failures wrap
// ErrContractViolation; checked accessors report ErrOutOfRange.
package pixel
