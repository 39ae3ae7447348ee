package internal

import (
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"Warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestScaleFor(t *testing.T) {
	if got := ScaleFor(240); got != 1 {
		t.Errorf("ScaleFor(240) = %v, want 1", got)
	}
	if got := ScaleFor(960); got != 2 {
		t.Errorf("ScaleFor(960) = %v, want 2", got)
	}
}
