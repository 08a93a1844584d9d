// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard replaces the full clipboard content.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

var (
	// ErrUnavailable is returned when no clipboard utility is installed.
	ErrUnavailable = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard, or use --print)")
	// ErrNotReadable is returned by clipboards that only accept writes.
	ErrNotReadable = errors.New("printed output cannot be read back")
)

// Available reports whether c can be written. Clipboards that cannot tell
// are assumed available.
func Available(c Clipboard) bool {
	if p, ok := c.(interface{ Available() bool }); ok {
		return p.Available()
	}
	return true
}

// System is the OS clipboard.
type System struct{}

// Available reports whether a clipboard utility was found on this machine.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// Read returns the current system clipboard content.
func (System) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read failed: %w", err)
	}
	return text, nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemory returns a Memory clipboard holding initial.
func NewMemory(initial string) *Memory {
	return &Memory{text: initial}
}

// Write implements Clipboard.
func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Read implements Clipboard.
func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Writes returns how many times Write was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Writer sends clipboard content to an io.Writer instead, for --print.
type Writer struct {
	W io.Writer
}

// Write implements Clipboard. A trailing newline is added for the terminal.
func (w Writer) Write(text string) error {
	if _, err := fmt.Fprintln(w.W, text); err != nil {
		return fmt.Errorf("print failed: %w", err)
	}
	return nil
}

// Read implements Clipboard. It always fails with ErrNotReadable.
func (Writer) Read() (string, error) {
	return "", ErrNotReadable
}
