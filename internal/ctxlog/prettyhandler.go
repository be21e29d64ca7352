// Copyright (c) LinhMuks-DFox 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/LinhMuks-DFox/Smart-Latex/internal/color"
)

// TimeFormat is the format used for timestamps in log messages.
const TimeFormat = "[15:04:05.000]"

// PrettyHandler is a slog handler that writes compact, colorized
// single-line records intended for interactive terminal use.
type PrettyHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w at the given level.
func NewPrettyHandler(w io.Writer, level slog.Leveler) *PrettyHandler {
	if level == nil {
		level = slog.LevelWarn
	}

	return &PrettyHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
	}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

// Handle implements slog.Handler.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	out := strings.Builder{}
	out.WriteString(color.Colorize(r.Time.Format(TimeFormat), color.FgWhite))
	out.WriteString(" ")
	out.WriteString(levelString(r.Level))
	out.WriteString(" ")
	out.WriteString(color.Colorize(r.Message, color.FgHiWhite))

	for _, a := range h.attrs {
		writeAttr(&out, h.groups, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&out, h.groups, a)
		return true
	})

	out.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.writer, out.String())

	return err
}

func writeAttr(out *strings.Builder, groups []string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}

	out.WriteString(" ")
	out.WriteString(color.Colorize(key+"=", color.FgCyan))
	out.WriteString(fmt.Sprint(a.Value.Resolve().Any()))
}

func levelString(l slog.Level) string {
	s := l.String() + ":"

	switch {
	case l <= slog.LevelDebug:
		return color.Colorize(s, color.FgWhite)
	case l <= slog.LevelInfo:
		return color.Colorize(s, color.FgCyan)
	case l < slog.LevelError:
		return color.Colorize(s, color.FgYellow)
	default:
		return color.Colorize(s, color.FgRed)
	}
}
