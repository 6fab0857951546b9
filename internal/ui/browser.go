package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/simcheck/internal/report"
	"github.com/yildizm/simcheck/internal/vectorize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	flaggedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	helpStyle = lipgloss.NewStyle().
			Faint(true)
)

// BrowserModel is an interactive viewer for scored document pairs.
type BrowserModel struct {
	width       int
	height      int
	report      *report.Report
	cursor      int
	offset      int
	flaggedOnly bool
	ready       bool
	quitting    bool
}

// NewBrowserModel creates a browser over a finished report.
func NewBrowserModel(r *report.Report) *BrowserModel {
	return &BrowserModel{report: r}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.visible()) - 1
		case "f":
			m.flaggedOnly = !m.flaggedOnly
			m.cursor = 0
			m.offset = 0
		}
		m.clampScroll()
	}

	return m, nil
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.quitting {
		return ""
	}

	var b strings.Builder

	mode := "all pairs"
	if m.flaggedOnly {
		mode = "flagged only"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("simcheck — %d documents, %d pairs, %d flagged (%s)",
		m.report.DocumentCount, len(m.report.Results), m.report.FlaggedCount(), mode)))
	b.WriteString("\n\n")

	visible := m.visible()
	if len(visible) == 0 {
		b.WriteString("No pairs to show.\n")
	}

	rows := m.rowBudget()
	for i := m.offset; i < len(visible) && i < m.offset+rows; i++ {
		pair := visible[i]

		line := fmt.Sprintf("%s vs %s  %6.2f%%", pair.NameA, pair.NameB, pair.Score*100)
		if m.report.Flagged(pair.Score) {
			line += "  " + flaggedStyle.Render("PLAGIARIZED")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · f toggle flagged · q quit"))
	b.WriteString("\n")

	return b.String()
}

// visible returns the pairs currently listed, honoring the flagged filter.
func (m *BrowserModel) visible() []vectorize.PairResult {
	if !m.flaggedOnly {
		return m.report.Results
	}
	flagged := make([]vectorize.PairResult, 0, len(m.report.Results))
	for _, pair := range m.report.Results {
		if m.report.Flagged(pair.Score) {
			flagged = append(flagged, pair)
		}
	}
	return flagged
}

// rowBudget is the number of list rows that fit in the current window.
func (m *BrowserModel) rowBudget() int {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *BrowserModel) clampScroll() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if rows := m.rowBudget(); m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// Browse runs the interactive result browser.
func Browse(r *report.Report) error {
	p := tea.NewProgram(NewBrowserModel(r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
