package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	maxHeightPercent = 40 // percentage of terminal height for the picker
	reservedLines    = 6  // title, filter, counter, help and border
	minHeight        = 10
)

// Model is the bubbletea model for the multi-select list.
type Model struct {
	title     string
	theme     Theme
	keys      keyMap
	textArea  textarea.Model
	items     []Item
	visible   []int // indices into items matching the filter
	cursor    int   // index into visible
	width     int
	height    int
	maxHeight int
	accepted  bool
	quitting  bool
}

func newTextArea(prompt string, promptStyle lipgloss.Style) textarea.Model {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 256
	ta.Prompt = prompt
	ta.Placeholder = "filter..."
	ta.MaxHeight = 1
	ta.SetHeight(1)
	ta.FocusedStyle.Prompt = promptStyle
	ta.FocusedStyle.Text = lipgloss.NewStyle()
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys())
	ta.KeyMap.LineNext = key.NewBinding(key.WithKeys())
	ta.KeyMap.LinePrevious = key.NewBinding(key.WithKeys())
	ta.Focus()
	return ta
}

// NewModel creates a picker over a copy of items. Each item starts in the
// state given by its Picked flag.
func NewModel(title string, items []Item, theme Theme) Model {
	own := append([]Item(nil), items...)
	visible := make([]int, len(own))
	for i := range own {
		visible[i] = i
	}
	return Model{
		title:     title,
		theme:     theme,
		keys:      defaultKeyMap(),
		textArea:  newTextArea(theme.Prompt, theme.PromptStyle()),
		items:     own,
		visible:   visible,
		maxHeight: minHeight,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.maxHeight = max(msg.Height*maxHeightPercent/100, minHeight)
		m.textArea.SetWidth(max(msg.Width-4, 1))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Dismiss):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m = m.toggleCurrent()
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleUp):
			m = m.toggleCurrent()
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleAll):
			return m.toggleAll(), nil
		}
	}

	var cmd tea.Cmd
	m.textArea, cmd = m.textArea.Update(msg)
	m = m.updateFilter()
	return m, cmd
}

func (m Model) toggleCurrent() Model {
	if len(m.visible) == 0 {
		return m
	}
	m.items = append([]Item(nil), m.items...)
	i := m.visible[m.cursor]
	m.items[i].Picked = !m.items[i].Picked
	return m
}

// toggleAll picks every visible item, or unpicks them all when they are
// already picked.
func (m Model) toggleAll() Model {
	all := true
	for _, i := range m.visible {
		if !m.items[i].Picked {
			all = false
			break
		}
	}
	m.items = append([]Item(nil), m.items...)
	for _, i := range m.visible {
		m.items[i].Picked = !all
	}
	return m
}

func (m Model) updateFilter() Model {
	filter := strings.ToLower(strings.TrimSpace(m.textArea.Value()))
	m.visible = m.visible[:0:0]
	for i, it := range m.items {
		if filter == "" || strings.Contains(strings.ToLower(it.Label), filter) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	return m
}

// Accepted reports whether the user confirmed the selection.
func (m Model) Accepted() bool {
	return m.accepted
}

// Items returns the items with their current picked state.
func (m Model) Items() []Item {
	return append([]Item(nil), m.items...)
}

// Selected returns the picked items in list order, including any hidden by
// the filter.
func (m Model) Selected() []Item {
	return pickedOf(m.items)
}

func (m Model) pickedCount() int {
	n := 0
	for _, it := range m.items {
		if it.Picked {
			n++
		}
	}
	return n
}
