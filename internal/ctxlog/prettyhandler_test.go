// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandlerDefaults(t *testing.T) {
	h := NewPrettyHandler(nil)

	assert.NotNil(t, h.h)
	assert.NotNil(t, h.b)
	assert.NotNil(t, h.m)
	assert.Equal(t, os.Stderr, h.writer)
	assert.False(t, h.colour)
	assert.False(t, h.outputEmptyAttrs)
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		handler slog.Level
		want    bool
	}{
		{name: "debug with debug handler", level: slog.LevelDebug, handler: slog.LevelDebug, want: true},
		{name: "debug with info handler", level: slog.LevelDebug, handler: slog.LevelInfo, want: false},
		{name: "error with warn handler", level: slog.LevelError, handler: slog.LevelWarn, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPrettyHandler(&slog.HandlerOptions{Level: tt.handler})
			assert.Equal(t, tt.want, h.Enabled(context.Background(), tt.level))
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer

	h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, WithDestinationWriter(&buf), WithOutputEmptyAttrs())

	withAttrs, ok := h.WithAttrs([]slog.Attr{slog.String("name", "clang")}).(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, h.b, withAttrs.b)
	assert.Same(t, h.m, withAttrs.m)
	assert.True(t, withAttrs.outputEmptyAttrs, "options must survive WithAttrs")

	withGroup, ok := withAttrs.WithGroup("probe").(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, h.b, withGroup.b)

	logger := slog.New(withGroup)
	logger.Debug("tested", "via", "PATH")

	out := buf.String()
	assert.Contains(t, out, `"name"`)
	assert.Contains(t, out, `"clang"`)
	assert.Contains(t, out, `"probe"`)
	assert.Contains(t, out, `"via"`)
}

func TestPrettyHandler_Handle(t *testing.T) {
	tests := []struct {
		name    string
		level   slog.Level
		message string
		attrs   []any
		options []Option
		want    []string
		notWant []string
	}{
		{
			name:    "info without attributes",
			level:   slog.LevelInfo,
			message: "developer directory selected",
			want:    []string{"INFO:", "developer directory selected"},
			notWant: []string{"{"},
		},
		{
			name:    "debug with attributes",
			level:   slog.LevelDebug,
			message: "probe",
			attrs:   []any{"candidate", "/usr/bin/cc", "ok", true},
			want:    []string{"DEBUG:", "probe", `"candidate"`, `"/usr/bin/cc"`, "true"},
		},
		{
			name:    "empty attributes rendered on request",
			level:   slog.LevelWarn,
			message: "nothing",
			options: []Option{WithOutputEmptyAttrs()},
			want:    []string{"WARN:", "nothing", "{}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			opts := append([]Option{WithDestinationWriter(&buf)}, tt.options...)
			h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, opts...)

			record := slog.NewRecord(time.Now(), tt.level, tt.message, 0)
			record.Add(tt.attrs...)

			require.NoError(t, h.Handle(context.Background(), record))

			out := buf.String()
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}

			for _, nw := range tt.notWant {
				assert.NotContains(t, out, nw)
			}

			assert.NotContains(t, out, "\033[", "colour must be off by default")
			assert.Equal(t, byte('\n'), out[len(out)-1])
		})
	}
}

func TestPrettyHandler_Colour(t *testing.T) {
	var buf bytes.Buffer

	h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, WithDestinationWriter(&buf), WithColour())

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError, slog.LevelError + 4} {
		buf.Reset()
		require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), level, "msg", 0)))
		assert.Contains(t, buf.String(), "\033[")
	}
}

func TestPrettyHandler_ReplaceAttr(t *testing.T) {
	var buf bytes.Buffer

	replace := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}

		if a.Key == "home" {
			return slog.String("home", "[REDACTED]")
		}

		return a
	}

	h := NewPrettyHandler(&slog.HandlerOptions{
		Level:       slog.LevelDebug,
		ReplaceAttr: replace,
	}, WithDestinationWriter(&buf))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "sdk root", 0)
	record.Add("home", "/home/dev", "source", "config")

	require.NoError(t, h.Handle(context.Background(), record))

	out := buf.String()
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "/home/dev")
	assert.Contains(t, out, "source")
	assert.True(t, out[0] == 'I', "time should be removed, got %q", out)
}

func TestPrettyHandler_Errors(t *testing.T) {
	t.Run("inner handler fails", func(t *testing.T) {
		h := &PrettyHandler{h: &failingHandler{}, b: &bytes.Buffer{}, m: &sync.Mutex{}}

		_, err := h.computeAttrs(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0))
		assert.Error(t, err)
	})

	t.Run("writer fails", func(t *testing.T) {
		h := NewPrettyHandler(&slog.HandlerOptions{Level: slog.LevelDebug}, WithDestinationWriter(&failingWriter{}))

		err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "x", 0))
		assert.ErrorIs(t, err, ErrIoWrite)
	})
}

func TestSuppressDefaults(t *testing.T) {
	next := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == "transform" {
			return slog.String("transform", "transformed")
		}

		return a
	}

	tests := []struct {
		name string
		next func([]string, slog.Attr) slog.Attr
		attr slog.Attr
		want slog.Attr
	}{
		{name: "time suppressed", attr: slog.Time(slog.TimeKey, time.Now()), want: slog.Attr{}},
		{name: "level suppressed", attr: slog.Any(slog.LevelKey, slog.LevelInfo), want: slog.Attr{}},
		{name: "message suppressed", attr: slog.String(slog.MessageKey, "m"), want: slog.Attr{}},
		{name: "custom kept", attr: slog.String("custom", "v"), want: slog.String("custom", "v")},
		{name: "next applied", next: next, attr: slog.String("transform", "o"), want: slog.String("transform", "transformed")},
		{name: "time suppressed before next", next: next, attr: slog.Time(slog.TimeKey, time.Now()), want: slog.Attr{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suppressDefaults(tt.next)(nil, tt.attr)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

type failingHandler struct{}

func (h *failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("failing handler error")
}

func (h *failingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *failingHandler) WithGroup(string) slog.Handler { return h }

type failingWriter struct{}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
