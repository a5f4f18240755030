// SPDX-License-Identifier: MIT

package scalespace_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := scalespace.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(t.Context(), slog.LevelError))
}

func TestSetLogger_RoundTripAndNilReset(t *testing.T) {
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scalespace.SetLogger(custom)
	require.Same(t, custom, scalespace.Logger())
	scalespace.Logger().Debug("sample line", "k", 1)
	require.Contains(t, buf.String(), "sample line")

	scalespace.SetLogger(nil)
	require.False(t, scalespace.Logger().Enabled(t.Context(), slog.LevelError))
}
