package picker

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual appearance of the picker.
type Theme struct {
	Prompt     string
	Pointer    string
	Checked    string
	Unchecked  string
	SelectedFg string
	MatchFg    string
	TextFg     string
	MutedFg    string
	Border     string
	BorderFg   string
	renderer   *lipgloss.Renderer
}

// WithRenderer returns a copy of the theme with the given renderer set.
// The renderer determines which output the styles render to, so colors match
// the terminal the picker is drawn on rather than stdout.
func (t Theme) WithRenderer(r *lipgloss.Renderer) Theme {
	t.renderer = r
	return t
}

func (t Theme) newStyle() lipgloss.Style {
	if t.renderer != nil {
		return t.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// DefaultTheme returns an fzf-like theme with sensible defaults.
func DefaultTheme() Theme {
	return Theme{
		Prompt:     "> ",
		Pointer:    "▌",
		Checked:    "[x]",
		Unchecked:  "[ ]",
		SelectedFg: "170",
		MatchFg:    "205",
		TextFg:     "252",
		MutedFg:    "241",
		Border:     "rounded",
		BorderFg:   "240",
	}
}

// Merge returns t with every non-empty field of o applied on top.
func (t Theme) Merge(o Theme) Theme {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Prompt, o.Prompt)
	set(&t.Pointer, o.Pointer)
	set(&t.Checked, o.Checked)
	set(&t.Unchecked, o.Unchecked)
	set(&t.SelectedFg, o.SelectedFg)
	set(&t.MatchFg, o.MatchFg)
	set(&t.TextFg, o.TextFg)
	set(&t.MutedFg, o.MutedFg)
	set(&t.Border, o.Border)
	set(&t.BorderFg, o.BorderFg)
	return t
}

// SelectedStyle returns the style for the item under the cursor.
func (t Theme) SelectedStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.SelectedFg)).Bold(true)
}

// NormalStyle returns the style for other items.
func (t Theme) NormalStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.TextFg))
}

// MutedStyle returns the style for descriptions, counters and hints.
func (t Theme) MutedStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.MutedFg))
}

// TitleStyle returns the style for the picker title.
func (t Theme) TitleStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.TextFg)).Bold(true)
}

// PromptStyle returns the style for the filter prompt symbol.
func (t Theme) PromptStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.MatchFg))
}

// CheckStyle returns the style for the checkbox of a picked item.
func (t Theme) CheckStyle() lipgloss.Style {
	return t.newStyle().Foreground(lipgloss.Color(t.MatchFg))
}

// BorderStyle returns the lipgloss border style based on the theme's border type.
func (t Theme) BorderStyle() lipgloss.Style {
	return t.newStyle().
		Border(t.borderType()).
		BorderForeground(lipgloss.Color(t.BorderFg))
}

func (t Theme) borderType() lipgloss.Border {
	switch t.Border {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
