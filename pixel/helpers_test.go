// SPDX-License-Identifier: MIT
// Package pixel_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures: contiguous and deliberately strided
//     buffers built from literal rows, plus comparison helpers on top of
//     go-cmp so failures print a readable diff.

package pixel_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/pixel"
)

// mustBuffer allocates a zeroed w×h buffer or fails the test.
func mustBuffer(t testing.TB, w, h int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(w, h)
	require.NoError(t, err)

	return b
}

// fromRows builds a contiguous buffer from literal rows.
func fromRows(t testing.TB, rows [][]float32) *pixel.Buffer {
	t.Helper()
	b, err := pixel.FromRows(rows)
	require.NoError(t, err)

	return b
}

// strided builds a buffer with the same samples as rows but a non-trivial
// layout (offset 1, column stride 2, padded rows) so operations are forced
// off their contiguous fast path.
func strided(t testing.TB, rows [][]float32) *pixel.Buffer {
	t.Helper()
	h, w := len(rows), len(rows[0])
	const offset, colStride = 1, 2
	rowStride := w*colStride + 3
	data := make([]float32, offset+h*rowStride)
	for i := range data {
		data[i] = -999 // poison: must never be read
	}
	for r := range rows {
		for c, v := range rows[r] {
			data[offset+r*rowStride+c*colStride] = v
		}
	}
	b, err := pixel.NewStrided(w, h, rowStride, colStride, offset, data)
	require.NoError(t, err)
	require.False(t, pixel.Contiguous_TestOnly(b))

	return b
}

// rows copies a buffer back into literal rows.
func rows(b *pixel.Buffer) [][]float32 {
	out := make([][]float32, b.Height())
	for r := range out {
		out[r] = make([]float32, b.Width())
		for c := range out[r] {
			out[r][c] = b.AtFast(r, c)
		}
	}

	return out
}

// requireRows asserts b holds exactly want.
func requireRows(t testing.TB, want [][]float32, b *pixel.Buffer) {
	t.Helper()
	if diff := cmp.Diff(want, rows(b), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("buffer mismatch (-want +got):\n%s", diff)
	}
}

// requireRowsApprox asserts b holds want within an absolute margin.
func requireRowsApprox(t testing.TB, want [][]float32, b *pixel.Buffer, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, rows(b), cmpopts.EquateApprox(0, margin)); diff != "" {
		t.Fatalf("buffer mismatch (-want +got):\n%s", diff)
	}
}
