package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/logger"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		require.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestInit_FiltersAndLowercasesLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.Init(slog.LevelWarn, &buf)

	logger.Info("hidden", "module", "test")
	logger.Warn("entry skipped", "module", "repository", "result", "skipped")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, `msg="entry skipped"`)
	require.Contains(t, out, "module=repository")
}
