// SPDX-License-Identifier: MIT
// Package: pixel
//
// Purpose:
//   - Buffer is the one data structure every other package operates on: a
//     W×H grid of float32 samples addressed through explicit strides.
//   - Provide checked accessors (At/Set) for callers and unchecked ones
//     (AtFast/SetFast) for inner loops that already proved their bounds.
//
// Design:
//   - element(r,c) = data[offset + r*rowStride + c*colStride].
//   - New/FromSlice produce the contiguous layout (rowStride=W, colStride=1);
//     NewStrided accepts any positive strides so interleaved channels or
//     transposed views can be wrapped without copying.
//   - A Buffer owns its backing slice. Buffers produced by this package never
//     share storage, which is what makes the pointer-level alias check in
//     ValidateNoAlias sufficient.
//
// AI-Hints:
//   - Use AtFast/SetFast only inside loops bounded by Width()/Height().
//   - Prefer the package functions (Add, Scale, ...) over Do/Apply in hot
//     paths: they pick a flat fast path for contiguous buffers.

package pixel

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas/blas32"
)

// Buffer is a dense, strided, single-channel float32 image.
// The zero value is not usable; construct with New, FromSlice, NewStrided or FromRows.
type Buffer struct {
	w, h      int       // width (columns) and height (rows), both > 0
	rowStride int       // distance between vertically adjacent samples
	colStride int       // distance between horizontally adjacent samples
	offset    int       // index of element (0,0)
	data      []float32 // exclusively owned backing storage
}

// New allocates a zero-filled contiguous width×height buffer.
//
// Errors: ErrInvalidDimensions if width <= 0 or height <= 0.
// Complexity: O(W*H) time and memory.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}

	return &Buffer{
		w:         width,
		h:         height,
		rowStride: width,
		colStride: 1,
		data:      make([]float32, width*height),
	}, nil
}

// FromSlice wraps a row-major slice of at least width*height samples.
// The buffer takes ownership of data; the caller must not keep using it.
func FromSlice(width, height int, data []float32) (*Buffer, error) {
	return NewStrided(width, height, width, 1, 0, data)
}

// NewStrided wraps data with explicit strides and base offset.
//
// Errors:
//   - ErrInvalidDimensions if width or height is non-positive.
//   - ErrBadStrides if a stride is < 1 or offset < 0.
//   - ErrShortBacking if len(data) < offset + (H-1)*rowStride + (W-1)*colStride + 1.
func NewStrided(width, height, rowStride, colStride, offset int, data []float32) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("NewStrided(%d,%d): %w", width, height, ErrInvalidDimensions)
	}
	if rowStride < 1 || colStride < 1 || offset < 0 {
		return nil, fmt.Errorf("NewStrided(rowStride=%d,colStride=%d,offset=%d): %w",
			rowStride, colStride, offset, ErrBadStrides)
	}
	need := offset + (height-1)*rowStride + (width-1)*colStride + 1
	if len(data) < need {
		return nil, fmt.Errorf("NewStrided: need %d samples, have %d: %w", need, len(data), ErrShortBacking)
	}

	return &Buffer{
		w:         width,
		h:         height,
		rowStride: rowStride,
		colStride: colStride,
		offset:    offset,
		data:      data,
	}, nil
}

// FromRows copies a rectangular [][]float32 (rows[r][c]) into a new buffer.
//
// Errors: ErrInvalidDimensions for an empty input, ErrDimensionMismatch for ragged rows.
func FromRows(rows [][]float32) (*Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	b, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.w {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", r, len(row), b.w, ErrDimensionMismatch)
		}
		copy(b.data[r*b.w:(r+1)*b.w], row)
	}

	return b, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.w }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.h }

// Shape returns (width, height).
func (b *Buffer) Shape() (int, int) { return b.w, b.h }

// Len returns W*H.
func (b *Buffer) Len() int { return b.w * b.h }

// RowStride returns the distance between vertically adjacent samples.
func (b *Buffer) RowStride() int { return b.rowStride }

// ColStride returns the distance between horizontally adjacent samples.
func (b *Buffer) ColStride() int { return b.colStride }

// Offset returns the backing index of element (0,0).
func (b *Buffer) Offset() int { return b.offset }

// index maps (row,col) to a backing index. No bounds checks.
func (b *Buffer) index(row, col int) int {
	return b.offset + row*b.rowStride + col*b.colStride
}

// inBounds reports whether (row,col) addresses a real sample.
func (b *Buffer) inBounds(row, col int) bool {
	return row >= 0 && row < b.h && col >= 0 && col < b.w
}

// contiguous reports whether the W*H samples form one dense row-major run.
func (b *Buffer) contiguous() bool {
	return b.colStride == 1 && b.rowStride == b.w
}

// flat returns the dense run of samples; valid only when contiguous() holds.
func (b *Buffer) flat() []float32 {
	return b.data[b.offset : b.offset+b.w*b.h]
}

// rowVec exposes row r as a blas32 strided vector.
func (b *Buffer) rowVec(r int) blas32.Vector {
	return blas32.Vector{N: b.w, Inc: b.colStride, Data: b.data[b.index(r, 0):]}
}

// At returns the sample at (row,col).
//
// Errors: ErrOutOfRange (wrapped with coordinates) if the coordinate is outside the buffer.
// Complexity: O(1).
func (b *Buffer) At(row, col int) (float32, error) {
	if !b.inBounds(row, col) {
		return 0, bufferErrorf("At", row, col, ErrOutOfRange)
	}

	return b.data[b.index(row, col)], nil
}

// Set writes v at (row,col).
//
// Errors: ErrOutOfRange (wrapped with coordinates) if the coordinate is outside the buffer.
func (b *Buffer) Set(row, col int, v float32) error {
	if !b.inBounds(row, col) {
		return bufferErrorf("Set", row, col, ErrOutOfRange)
	}
	b.data[b.index(row, col)] = v

	return nil
}

// AtFast returns the sample at (row,col) without bounds checks.
// The caller guarantees 0<=row<Height() and 0<=col<Width(); violating that
// reads a neighbouring sample or panics on the backing slice.
func (b *Buffer) AtFast(row, col int) float32 {
	return b.data[b.index(row, col)]
}

// SetFast writes v at (row,col) without bounds checks. See AtFast.
func (b *Buffer) SetFast(row, col int, v float32) {
	b.data[b.index(row, col)] = v
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v float32) {
	if b.contiguous() {
		s := b.flat()
		for i := range s {
			s[i] = v
		}

		return
	}
	for r := 0; r < b.h; r++ {
		base := b.index(r, 0)
		for c := 0; c < b.w; c++ {
			b.data[base+c*b.colStride] = v
		}
	}
}

// Clone returns a contiguous deep copy.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{w: b.w, h: b.h, rowStride: b.w, colStride: 1, data: make([]float32, b.w*b.h)}
	if b.contiguous() {
		copy(out.data, b.flat())

		return out
	}
	for r := 0; r < b.h; r++ {
		blas32.Copy(b.rowVec(r), out.rowVec(r))
	}

	return out
}

// CopyFrom overwrites b with the samples of src.
//
// Errors: ErrNilBuffer, ErrDimensionMismatch.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if err := ValidateSameShape(b, src); err != nil {
		return opErrorf("Buffer.CopyFrom", err)
	}
	if b == src {
		return nil
	}
	for r := 0; r < b.h; r++ {
		blas32.Copy(src.rowVec(r), b.rowVec(r))
	}

	return nil
}

// Compatible reports whether a and b have equal width and height.
func Compatible(a, b *Buffer) bool {
	return a != nil && b != nil && a.w == b.w && a.h == b.h
}

// Do calls fn for every sample in row-major order.
func (b *Buffer) Do(fn func(row, col int, v float32)) {
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			fn(r, c, b.data[b.index(r, c)])
		}
	}
}

// Apply replaces every sample with fn(row, col, v), in row-major order.
func (b *Buffer) Apply(fn func(row, col int, v float32) float32) {
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			i := b.index(r, c)
			b.data[i] = fn(r, c, b.data[i])
		}
	}
}

// String renders the buffer as rows of %g values.
func (b *Buffer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Buffer(%dx%d)\n", b.w, b.h)
	for r := 0; r < b.h; r++ {
		sb.WriteByte('[')
		for c := 0; c < b.w; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", b.data[b.index(r, c)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
