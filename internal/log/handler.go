package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// TerminalHandler is a slog.Handler that prints colorful,
// component-tagged messages to an arbitrary sink. The zero
// value is not usable; construct one with NewTerminalHandler.
type TerminalHandler struct {
	out       io.Writer
	lvl       slog.Level
	attrs     []slog.Attr
	component string
}

func (h *TerminalHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.lvl
}

func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	lvl := r.Level.String()

	color := ""
	switch r.Level {
	case slog.LevelInfo:
		color = "\x1b[32m" // green
	case slog.LevelWarn:
		color = "\x1b[33m" // yellow
	case slog.LevelError:
		color = "\x1b[31m" // red
	}

	time := ""
	if !r.Time.IsZero() {
		time = fmt.Sprintf("[%s]", r.Time.Format("Jan 02|15:04:05.000"))
	}

	attrs := ""
	for _, a := range h.attrs {
		attrs += fmt.Sprintf("[%s=%s] ", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs += fmt.Sprintf("[%s=%s] ", a.Key, a.Value)
		return true
	})

	_, err := fmt.Fprintln(h.out, color, time, lvl, h.component, msg, attrs)
	return err
}

func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	component := h.component
	for _, attr := range attrs {
		if attr.Key == "component" {
			component = fmt.Sprintf("[%s]", attr.Value)
		}
	}

	return &TerminalHandler{
		out:       h.out,
		lvl:       h.lvl,
		attrs:     append(append([]slog.Attr{}, h.attrs...), attrs...),
		component: component,
	}
}

func (h *TerminalHandler) WithGroup(_ string) slog.Handler {
	panic("not implemented")
}

// NewTerminalHandler creates a new terminal log handler
// that prints colorful messages to out at the given
// minimum level.
func NewTerminalHandler(out io.Writer, lvl slog.Level) *TerminalHandler {
	return &TerminalHandler{
		out:       out,
		lvl:       lvl,
		attrs:     []slog.Attr{},
		component: "[]",
	}
}

// NewStdoutHandler creates a terminal handler writing to
// os.Stdout at debug level, matching the previous default.
func NewStdoutHandler() *TerminalHandler {
	return NewTerminalHandler(os.Stdout, slog.LevelDebug)
}
