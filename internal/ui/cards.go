package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/state"
)

// Empty and loading copy.
const (
	loadingText    = "Loading delicious foods..."
	emptyTitle     = "No foods found"
	emptySubtitle  = "Try searching for something else or add a new food item"
	loadMoreFormat = "m  Load more (%d more)"
)

// renderContent renders the area between the search line and the footer.
// A load-failure banner sits above the list; the list itself keeps
// rendering so later searches and edits stay visible.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	height := m.contentHeight()

	var body string
	switch {
	case m.view.Status == state.StatusLoading:
		msg := m.spinner.View() + " " + styles.WarningText.Render(loadingText)
		body = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)

	case len(m.view.Filtered) == 0:
		msg := lipgloss.JoinVertical(lipgloss.Center,
			styles.Text.Bold(true).Render(emptyTitle),
			"",
			styles.MutedText.Render(emptySubtitle),
		)
		body = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, msg)

	default:
		body = m.cards.View()
	}

	if m.bannerHeight() == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderBanner(), "", body)
}

func (m Model) renderBanner() string {
	styles := m.theme.Styles()
	return " " + styles.DangerText.Render("● "+m.view.Banner) + "  " +
		styles.MutedText.Render("Press r to try again")
}

// bannerHeight is the banner line plus its gap, or 0 with no banner.
func (m Model) bannerHeight() int {
	if m.view.Banner == "" || m.view.Status == state.StatusLoading {
		return 0
	}
	return 2
}

func (m Model) contentHeight() int {
	return maxInt(m.height-chromeLines-m.bannerHeight(), 1)
}

func (m Model) cardHeight() int {
	if m.compact {
		return cardLinesCompact
	}
	return cardLinesFull
}

// updateCards re-renders the card list and keeps the selected card in view.
func (m *Model) updateCards() {
	if !m.ready {
		return
	}
	m.cards.Width = m.width
	m.cards.Height = m.contentHeight()
	m.cards.SetContent(m.renderCards())

	stride := m.cardHeight() + cardGap
	top := m.cursor * stride
	bottom := top + m.cardHeight()
	switch {
	case top < m.cards.YOffset:
		m.cards.SetYOffset(top)
	case bottom > m.cards.YOffset+m.cards.Height:
		m.cards.SetYOffset(bottom - m.cards.Height)
	}
}

// renderCards renders the visible window of the filtered list.
func (m Model) renderCards() string {
	visible := m.view.Visible()
	width := maxInt(m.width-2, LayoutMinCardWidth)

	blocks := make([]string, 0, len(visible)+1)
	for i, food := range visible {
		blocks = append(blocks, m.renderCard(food, width, i == m.cursor))
	}
	if m.view.HasMore() {
		styles := m.theme.Styles()
		remaining := len(m.view.Filtered) - len(visible)
		blocks = append(blocks, " "+styles.AccentText.Render(fmt.Sprintf(loadMoreFormat, remaining)))
	}
	return strings.Join(blocks, strings.Repeat("\n", cardGap+1))
}

// renderCard renders one meal. Format:
//
//	▌ Name                          ★ 4.5  $2.99  Open
//	▌   image https://...
//	▌   logo  https://...
func (m Model) renderCard(food foodapi.Food, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	var barStyle, nameStyle, mutedStyle, ratingStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
		nameStyle = selText.Bold(true)
		mutedStyle = selText
		ratingStyle = selText
	} else {
		barStyle = styles.FaintText
		nameStyle = styles.Text.Bold(true)
		mutedStyle = styles.MutedText
		ratingStyle = styles.WarningText
	}

	badge := styles.StatusStyle(strings.ToLower(food.StatusLabel())).Render(food.StatusLabel())
	meta := bg.Render("★ "+food.RatingLabel(), ratingStyle) + bg.Spaces(2) +
		bg.Render(food.PriceLabel(), mutedStyle) + bg.Spaces(2) + badge
	metaWidth := lipgloss.Width(meta)

	name := strings.TrimSpace(food.Name)
	if name == "" {
		name = "Untitled meal"
	}
	nameWidth := maxInt(width-metaWidth-4, 8)
	title := bg.Render(padRight(truncate(name, nameWidth), nameWidth), nameStyle)

	bar := bg.Render("▌", barStyle) + bg.Space()
	lines := []string{bar + title + bg.Space() + meta}

	if !m.compact {
		urlWidth := maxInt(width-12, 10)
		lines = append(lines,
			bar+bg.Spaces(2)+bg.Render("image", mutedStyle)+bg.Space()+
				bg.Render(truncateMiddle(ternary(food.Avatar == "", "-", food.Avatar), urlWidth), mutedStyle),
			bar+bg.Spaces(2)+bg.Render("logo ", mutedStyle)+bg.Space()+
				bg.Render(truncateMiddle(ternary(food.Logo == "", "-", food.Logo), urlWidth), mutedStyle),
		)
	}

	for i, line := range lines {
		lines[i] = bg.FillLine(line, width)
	}
	return strings.Join(lines, "\n")
}
