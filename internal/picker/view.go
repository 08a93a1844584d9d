package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	if m.title != "" {
		content.WriteString(m.theme.TitleStyle().Render(m.title))
		content.WriteString("\n")
	}
	content.WriteString(m.textArea.View())
	content.WriteString("\n")

	maxItems := max(m.maxHeight-reservedLines, 1)
	start := 0
	if m.cursor >= maxItems {
		start = m.cursor - maxItems + 1
	}
	end := min(start+maxItems, len(m.visible))

	pointerWidth := lipgloss.Width(m.theme.Pointer)
	padding := strings.Repeat(" ", pointerWidth)

	for row := start; row < end; row++ {
		it := m.items[m.visible[row]]
		mark := m.theme.Unchecked
		if it.Picked {
			mark = m.theme.CheckStyle().Render(m.theme.Checked)
		}

		label, desc := m.fit(it.Label, it.Description, pointerWidth+lipgloss.Width(m.theme.Checked)+2)

		if row == m.cursor {
			content.WriteString(m.theme.PromptStyle().Render(m.theme.Pointer) + " " + mark + " " + m.theme.SelectedStyle().Render(label))
		} else {
			content.WriteString(padding + " " + mark + " " + m.theme.NormalStyle().Render(label))
		}
		if desc != "" {
			content.WriteString("  " + m.theme.MutedStyle().Render(desc))
		}
		content.WriteString("\n")
	}

	counter := fmt.Sprintf("%d/%d selected", m.pickedCount(), len(m.items))
	if len(m.visible) != len(m.items) {
		counter += fmt.Sprintf(" (%d shown)", len(m.visible))
	}
	content.WriteString(m.theme.MutedStyle().Render(counter))
	content.WriteString("\n")
	content.WriteString(m.theme.MutedStyle().Render(m.helpLine()))

	borderStyle := m.theme.BorderStyle()
	if m.width > 0 {
		borderStyle = borderStyle.Width(m.width - 2)
	}

	return borderStyle.Render(content.String()) + "\n"
}

// fit truncates label and description so a row stays within the terminal
// width. The description is dropped before the label is cut.
func (m Model) fit(label, desc string, prefix int) (string, string) {
	if m.width <= 0 {
		return label, desc
	}
	room := m.width - 4 - prefix
	if room <= 0 {
		return label, ""
	}
	lw := runewidth.StringWidth(label)
	if lw >= room {
		return runewidth.Truncate(label, room, "…"), ""
	}
	if desc == "" {
		return label, ""
	}
	descRoom := room - lw - 2
	if descRoom <= 1 {
		return label, ""
	}
	return label, runewidth.Truncate(desc, descRoom, "…")
}

func (m Model) helpLine() string {
	var parts []string
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
