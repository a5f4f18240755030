// SPDX-License-Identifier: MIT

package detect_test

import (
	"testing"

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

// cone is a w×h buffer peaking at (pr,pc) with value top, falling by 1 per
// step of L1 distance. Every other pixel has a strictly larger neighbour.
func cone(t testing.TB, w, h, pr, pc int, top float32) *pixel.Buffer {
	t.Helper()
	b := mustBuffer(t, w, h)
	b.Apply(func(r, c int, _ float32) float32 {
		return top - float32(abs(r-pr)+abs(c-pc))
	})

	return b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func onesMask(t testing.TB, w, h int) *pixel.Buffer {
	t.Helper()
	m := mustBuffer(t, w, h)
	m.Fill(1)

	return m
}

// setBits lists the (row,col) of every sample equal to 1.
func setBits(m *pixel.Buffer) [][2]int {
	var out [][2]int
	m.Do(func(r, c int, v float32) {
		if v == 1 {
			out = append(out, [2]int{r, c})
		}
	})

	return out
}

func requireBorderZero(t testing.TB, b *pixel.Buffer) {
	t.Helper()
	w, h := b.Shape()
	b.Do(func(r, c int, v float32) {
		if r == 0 || c == 0 || r == h-1 || c == w-1 {
			require.Zero(t, v, "border sample (%d,%d)", r, c)
		}
	})
}
