package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// StageKey is the attribute that tags a record with the pipeline stage that emitted it.
const StageKey = "stage"

// badge is the icon and color a console line is rendered with.
type badge struct {
	icon  string
	color lipgloss.Color
}

func badgeFor(level slog.Level) badge {
	switch {
	case level >= slog.LevelError:
		return badge{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return badge{icon: style.Warning, color: style.Yellow}
	case level == LevelSuccess:
		return badge{icon: style.Check, color: style.Green}
	default:
		return badge{color: style.Slate}
	}
}

// ConsoleHandler is a slog.Handler that renders one colored line per record,
// prefixed with a status icon. A stage attribute becomes a "[stage]" tag;
// any other attributes trail the message as key=value pairs.
type ConsoleHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	stage  string
	fields []string
	prefix string
}

// NewConsoleHandler creates a ConsoleHandler writing to w, or stderr when w is nil.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &ConsoleHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record as a single styled line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	stage := h.stage
	fields := append([]string(nil), h.fields...)
	r.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && a.Key == StageKey {
			stage = a.Value.String()
			return true
		}
		fields = append(fields, h.field(a))
		return true
	})

	b := badgeFor(r.Level)
	var sb strings.Builder
	if b.icon != "" {
		sb.WriteString(b.icon + " ")
	}
	if stage != "" {
		sb.WriteString("[" + stage + "] ")
	}
	sb.WriteString(r.Message)
	for _, f := range fields {
		sb.WriteString(" " + f)
	}

	line := h.out.String(sb.String()).Foreground(termenv.RGBColor(string(b.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.fields = append([]string(nil), h.fields...)
	for _, a := range attrs {
		if h.prefix == "" && a.Key == StageKey {
			next.stage = a.Value.String()
			continue
		}
		next.fields = append(next.fields, h.field(a))
	}
	return &next
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *ConsoleHandler) field(a slog.Attr) string {
	return h.prefix + a.Key + "=" + a.Value.String()
}
