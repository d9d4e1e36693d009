// Package tui is an interactive browser over one window of daily reports:
// a date list on the left, the selected day's report on the right.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pmcli/postmortem/internal/model"
	"github.com/pmcli/postmortem/internal/timecalc"
)

const listWidth = 26

// Day pairs a day's summary with the raw report text shown in the pane.
type Day struct {
	Summary model.DaySummary
	Text    string
}

type tuiModel struct {
	days         []Day
	totalMinutes int
	issues       []string
	cursor       int
	report       viewport.Model
	width        int
	height       int
	ready        bool
}

// Run starts the browser and blocks until the user quits.
func Run(days []Day, totalMinutes int, issues []string) error {
	m := tuiModel{
		days:         days,
		totalMinutes: totalMinutes,
		issues:       issues,
		report:       viewport.New(0, 0),
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.report.Width = max(0, m.width-listWidth-6)
		m.report.Height = max(0, m.height-4)
		m.ready = true
		m.setReportContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.setReportContent()
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.days)-1 {
				m.cursor++
				m.setReportContent()
			}
			return m, nil
		case key.Matches(msg, keys.ReportUp):
			m.report.LineUp(m.report.Height / 2)
			return m, nil
		case key.Matches(msg, keys.ReportDn):
			m.report.LineDown(m.report.Height / 2)
			return m, nil
		case key.Matches(msg, keys.PageUp):
			m.report.LineUp(m.report.Height)
			return m, nil
		case key.Matches(msg, keys.PageDown):
			m.report.LineDown(m.report.Height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

// setReportContent renders the selected day into the viewport.
func (m *tuiModel) setReportContent() {
	if len(m.days) == 0 {
		m.report.SetContent("No days in window.")
		return
	}
	d := m.days[m.cursor]
	var b strings.Builder
	if !d.Summary.Present {
		fmt.Fprintf(&b, "No report for %s.\n", d.Summary.Date.Format("2006-01-02"))
	} else {
		b.WriteString(d.Text)
		if !strings.HasSuffix(d.Text, "\n") {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "\nWorked: %s\n", timecalc.FormatMinutes(d.Summary.Minutes))
		if len(d.Summary.Issues) > 0 {
			fmt.Fprintf(&b, "Issues: #%s\n", strings.Join(d.Summary.Issues, " #"))
		}
	}
	m.report.SetContent(b.String())
	m.report.GotoTop()
}

func (m tuiModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	listHeight := max(0, m.height-4)
	var list strings.Builder
	list.WriteString(styleTitle.Render("Days") + "\n")
	for i, d := range m.days {
		label := d.Summary.Date.Format("2006-01-02")
		if d.Summary.Present {
			label += "  " + timecalc.FormatMinutes(d.Summary.Minutes)
		} else {
			label += "  n/a"
		}
		style := styleListNormal
		if !d.Summary.Present {
			style = styleListAbsent
		}
		if i == m.cursor {
			style = styleListSelected
			label = "> " + label
		} else {
			label = "  " + label
		}
		list.WriteString(style.Render(label) + "\n")
	}

	left := styleActiveBorder.Width(listWidth).Height(listHeight).Render(list.String())
	right := stylePanelBorder.Width(max(0, m.width-listWidth-4)).Height(listHeight).Render(m.report.View())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := fmt.Sprintf("total %s · %d issues · q quit · j/k days · C-u/C-d scroll",
		timecalc.FormatMinutes(m.totalMinutes), len(m.issues))
	return panels + "\n" + styleStatusBar.Render(status)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
