package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodwagen/internal/logtail"
)

const logTailLines = 300

type logsLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

// loadLogs reads the tail of the log file off the update loop.
func (m Model) loadLogs() tea.Cmd {
	path := m.logFile
	if path == "" {
		return func() tea.Msg { return logsLoadedMsg{} }
	}
	return func() tea.Msg {
		entries, err := logtail.Tail(path, logTailLines)
		return logsLoadedMsg{entries: entries, err: err}
	}
}

func (m Model) openLogs() (Model, tea.Cmd) {
	m.showLogs = true
	m.logEntries = nil
	m.logErr = nil
	m.logView = viewport.New(maxInt(m.width-4, 10), maxInt(m.height-chromeLines, 1))
	return m, m.loadLogs()
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadLogs()
	case key.Matches(msg, m.keys.Top):
		m.logView.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logView.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func (m *Model) setLogContent() {
	styles := m.theme.Styles()
	if m.logErr != nil {
		m.logView.SetContent(styles.DangerText.Render("Could not read log: " + m.logErr.Error()))
		return
	}
	if len(m.logEntries) == 0 {
		hint := "No activity yet"
		if m.logFile == "" {
			hint = "Logging is disabled"
		}
		m.logView.SetContent(styles.MutedText.Render(hint))
		return
	}
	lines := make([]string, 0, len(m.logEntries))
	width := maxInt(m.logView.Width, 10)
	for _, entry := range m.logEntries {
		lines = append(lines, m.levelStyle(entry.Level).Render(truncate(entry.Format(), width)))
	}
	m.logView.SetContent(strings.Join(lines, "\n"))
	m.logView.GotoBottom()
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "debug":
		return styles.FaintText
	case "warn":
		return styles.WarningText
	case "error", "dpanic", "panic", "fatal":
		return styles.DangerText
	default:
		return styles.Text
	}
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Activity log")
	source := m.logFile
	if source == "" {
		source = "logging disabled"
	}
	header := title + "  " + styles.FaintText.Render(truncateMiddle(source, maxInt(m.width-20, 10)))
	footer := styles.MutedText.Render("j/k scroll  g/G top/bottom  r reload  esc close")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		styles.FaintText.Render(strings.Repeat("─", maxInt(m.width, 1))),
		m.logView.View(),
		footer,
	)
}
