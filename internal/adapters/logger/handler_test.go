package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/chunkgraph/internal/adapters/logger"
)

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		attrs      []any
		goldenName string
	}{
		{"info", slog.LevelInfo, "information message", nil, "handler_info"},
		{"warn", slog.LevelWarn, "warning message", nil, "handler_warn"},
		{"error", slog.LevelError, "error message", nil, "handler_error"},
		{"attrs", slog.LevelInfo, "pass finished", []any{"pass", "split-chunks", "created", 2}, "handler_attrs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg, tt.attrs...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).With("run", 1).WithGroup("pass")
	lg.Info("done", "name", "ids")

	g := goldie.New(t)
	g.Assert(t, "handler_group", buf.Bytes())
}

func TestPrettyHandler_PassInGroupStaysAnAttr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("stats")
	lg.Info("done", logger.PassKey, "ids")

	assert.Equal(t, "done stats.pass=ids\n", buf.String())
}
