// Package notify shows short user-facing messages.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Notifier surfaces messages to the user. Calls are fire-and-forget.
type Notifier interface {
	Warn(msg string)
	Info(msg string)
	Error(msg string)
}

// Terminal writes styled messages, one per line.
type Terminal struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewTerminal returns a Terminal writing to out. With noColor set the
// output is plain text regardless of what the terminal supports.
func NewTerminal(out io.Writer, noColor bool) *Terminal {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Terminal{out: out, renderer: r}
}

func (t *Terminal) warnStyle() lipgloss.Style {
	return t.renderer.NewStyle().Foreground(lipgloss.Color("214"))
}

func (t *Terminal) infoStyle() lipgloss.Style {
	return t.renderer.NewStyle().Foreground(lipgloss.Color("78"))
}

func (t *Terminal) errorStyle() lipgloss.Style {
	return t.renderer.NewStyle().Foreground(lipgloss.Color("196"))
}

// Warn implements Notifier.
func (t *Terminal) Warn(msg string) {
	fmt.Fprintln(t.out, t.warnStyle().Render(msg))
}

// Info implements Notifier.
func (t *Terminal) Info(msg string) {
	fmt.Fprintln(t.out, t.infoStyle().Render(msg))
}

// Error implements Notifier.
func (t *Terminal) Error(msg string) {
	fmt.Fprintln(t.out, t.errorStyle().Render(msg))
}

// Level is the severity of a recorded message.
type Level string

const (
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Message is one recorded notification.
type Message struct {
	Level Level
	Text  string
}

// Discard drops every message.
type Discard struct{}

func (Discard) Warn(string)  {}
func (Discard) Info(string)  {}
func (Discard) Error(string) {}

// Recorder keeps every message in memory.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Level: level, Text: msg})
}

// Warn implements Notifier.
func (r *Recorder) Warn(msg string) { r.add(LevelWarn, msg) }

// Info implements Notifier.
func (r *Recorder) Info(msg string) { r.add(LevelInfo, msg) }

// Error implements Notifier.
func (r *Recorder) Error(msg string) { r.add(LevelError, msg) }

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Of returns the texts recorded at level.
func (r *Recorder) Of(level Level) []string {
	var out []string
	for _, m := range r.Messages() {
		if m.Level == level {
			out = append(out, m.Text)
		}
	}
	return out
}
