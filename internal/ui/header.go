package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodwagen/internal/state"
)

// renderMain renders the full storefront screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the logo, title and list counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{
		bg.Render("foodwagen", styles.Logo),
		bg.Render("Featured Meals", styles.Text.Bold(true)),
	}

	if m.view.Status == state.StatusLoading {
		parts = append(parts, bg.Render("Loading...", styles.WarningText))
	} else {
		shown := len(m.view.Visible())
		label := ternary(compact, "", "Showing:")
		counts := bg.Render(fmt.Sprintf("%d/%d", shown, len(m.view.Filtered)), styles.Text)
		if label != "" {
			counts = bg.Render(label, styles.MutedText) + bg.Space() + counts
		}
		parts = append(parts, counts)
		if len(m.view.Filtered) != len(m.view.All) {
			parts = append(parts,
				bg.Render("Total:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", len(m.view.All)), styles.Text))
		}
	}

	if m.view.Banner != "" {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	}

	if q := m.view.Query; q != "" {
		parts = append(parts,
			bg.Render("Results for", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%q", truncate(q, 24)), styles.AccentText))
	}
	if m.view.Searching {
		parts = append(parts, bg.Render("Searching...", styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"/", "Search"},
		{"a", "Add Meal"},
		{"e", "Edit"},
		{"d", "Delete"},
	}
	if m.view.HasMore() {
		commands = append(commands, cmd{"m", "Load More"})
	}
	if m.view.Query != "" {
		commands = append(commands, cmd{"esc", "Clear search"})
	}
	commands = append(commands,
		cmd{"j/k", "Navigate"},
		cmd{"r", "Reload"},
		cmd{"?", "More"},
	)

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	return styles.Footer.Width(m.width).Render(bg.Join(segments, "  "))
}

// renderSearchLine shows the search input while it has focus.
func (m Model) renderSearchLine() string {
	if m.searching {
		return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(m.search.View())
	}
	styles := m.theme.Styles()
	hint := "Press / to search meals"
	if m.view.Query != "" {
		hint = fmt.Sprintf("Filtered by %q  (esc to clear)", m.view.Query)
	}
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(styles.FaintText.Render(hint))
}

// renderFooter shows the last action notice, or the API endpoint.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case m.notice != "" && m.noticeErr:
		content = bg.Render("!", styles.DangerText) + bg.Space() + bg.Render(m.notice, styles.DangerText)
	case m.notice != "":
		content = bg.Render("✓", styles.SuccessText) + bg.Space() + bg.Render(m.notice, styles.Text)
	case m.apiBase != "":
		content = bg.Render("api", styles.FaintText) + bg.Space() +
			bg.Render(truncateMiddle(m.apiBase, maxInt(m.width-8, 10)), styles.MutedText)
	}
	return styles.Footer.Width(m.width).Render(content)
}
