package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PickerItem is one selectable row.
type PickerItem struct {
	Label  string
	Detail string
}

// PickerModel is the bubbletea model for single-choice selection.
type PickerModel struct {
	title     string
	items     []PickerItem
	cursor    int
	chosen    int
	cancelled bool
}

// NewPickerModel creates a picker over items.
func NewPickerModel(title string, items []PickerItem) PickerModel {
	return PickerModel{title: title, items: items, chosen: -1}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PickerModel) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}

		label := item.Label
		if len(label) > 70 {
			label = label[:67] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(label)))

		if i == m.cursor && item.Detail != "" {
			detail := item.Detail
			if len(detail) > 76 {
				detail = detail[:73] + "..."
			}
			sb.WriteString(detailStyle.Render("    " + detail))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n(up/down to navigate, enter to select, q to cancel)\n")
	return sb.String()
}

// Choice returns the picked index, or ok=false on cancel.
func (m PickerModel) Choice() (int, bool) {
	if m.cancelled || m.chosen < 0 {
		return 0, false
	}
	return m.chosen, true
}

// RunPicker displays the picker and returns the chosen index.
func RunPicker(title string, items []PickerItem) (int, bool, error) {
	if len(items) == 0 {
		return 0, false, nil
	}

	p := tea.NewProgram(NewPickerModel(title, items))
	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	index, ok := finalModel.(PickerModel).Choice()
	return index, ok, nil
}
