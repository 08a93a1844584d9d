package picker

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal draws the picker on /dev/tty.
type Terminal struct {
	Theme   Theme
	NoColor bool
}

// saveTermState saves the current terminal state from /dev/tty and returns
// a function that restores it. bubbletea can leave the terminal in raw mode
// when the program is killed through its context.
func saveTermState() func() {
	f, err := os.Open("/dev/tty")
	if err != nil {
		return func() {}
	}
	state, err := term.GetState(int(f.Fd()))
	if err != nil {
		_ = f.Close()
		return func() {}
	}
	return func() {
		_ = term.Restore(int(f.Fd()), state)
		_ = f.Close()
	}
}

// openTTY opens /dev/tty for writing and creates a lipgloss renderer from it.
// Falls back to os.Stderr if /dev/tty is unavailable, keeping stdout free for
// --print output. The caller must close the returned file when tty != os.Stderr.
func openTTY(theme Theme, noColor bool) (*os.File, Theme) {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		tty = os.Stderr
	}
	r := lipgloss.NewRenderer(tty)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return tty, theme.WithRenderer(r)
}

// Pick shows the picker and blocks until the user confirms or dismisses it.
// A cancelled ctx closes the picker and counts as dismissal.
func (t Terminal) Pick(ctx context.Context, title string, items []Item) ([]Item, error) {
	tty, theme := openTTY(t.Theme, t.NoColor)
	if tty != os.Stderr {
		defer tty.Close() //nolint:errcheck
	}

	restore := saveTermState()
	m := NewModel(title, items, theme)
	p := tea.NewProgram(m, tea.WithOutput(tty), tea.WithInputTTY(), tea.WithContext(ctx))

	result, err := p.Run()
	restore()
	if ctx.Err() != nil {
		return nil, ErrDismissed
	}
	if err != nil {
		return nil, fmt.Errorf("picker error: %w", err)
	}

	model, ok := result.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type: %T", result)
	}
	if !model.Accepted() {
		return nil, ErrDismissed
	}
	return model.Selected(), nil
}
