// Package tui is a small bubbletea browser over a weekly insight: the
// seven weekday entries on the left, the selected day's detail on the
// right.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"flarecast/internal/core"
)

type model struct {
	weekly      core.WeeklyInsight
	selectedIdx int
	width       int
	height      int
	quitting    bool
}

// InitialModel returns the initial state of the TUI model.
func InitialModel(weekly core.WeeklyInsight) model {
	return model{weekly: weekly}
}

// Init is the first command that will be run. We don't need any.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model accordingly.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "down", "j":
			if m.selectedIdx < len(m.weekly.Days)-1 {
				m.selectedIdx++
			}
		}
	}

	return m, nil
}

// View renders the TUI.
func (m model) View() string {
	if m.quitting {
		return "Quitting...\n"
	}

	docStyle := lipgloss.NewStyle().Margin(1, 2)
	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/2 - 5)
	detailStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(m.width/2 - 5)

	listContent := m.weekly.Summary + "\n\n"
	for i, day := range m.weekly.Days {
		cursor := " "
		if i == m.selectedIdx {
			cursor = ">"
		}
		listContent += fmt.Sprintf("%s %s\n", cursor, day.Label)
	}

	detailContent := "No day selected."
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.weekly.Days) {
		day := m.weekly.Days[m.selectedIdx]
		detailContent = fmt.Sprintf("%s\n\n%s", day.Label, day.Detail)
	}

	leftPane := listStyle.Render(listContent)
	rightPane := detailStyle.Render(detailContent)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	help := "\n\n[↑/k] Up | [↓/j] Down | [q] Quit"

	return docStyle.Render(mainContent + help)
}

// StartTUI initializes and starts the Bubble Tea application.
func StartTUI(weekly core.WeeklyInsight) {
	p := tea.NewProgram(InitialModel(weekly), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
