// SPDX-License-Identifier: MIT

package convolve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/pixel"
)

func mustBuffer(t testing.TB, w, h int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(w, h)
	require.NoError(t, err)

	return b
}

func fromRows(t testing.TB, rows [][]float32) *pixel.Buffer {
	t.Helper()
	b, err := pixel.FromRows(rows)
	require.NoError(t, err)

	return b
}

func randomBuffer(t testing.TB, w, h int) *pixel.Buffer {
	t.Helper()
	b := mustBuffer(t, w, h)
	require.NoError(t, pixel.RandomUniform(b, -1, 1))

	return b
}

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

func requireRowsApprox(t testing.TB, want [][]float32, b *pixel.Buffer, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, rows(b), cmpopts.EquateApprox(0, margin)); diff != "" {
		t.Fatalf("buffer mismatch (-want +got):\n%s", diff)
	}
}
