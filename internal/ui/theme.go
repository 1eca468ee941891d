package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette for the storefront.
type Theme struct {
	Name string

	Background string // behind overlays
	Surface    string // header, command bar, footer
	SurfaceAlt string // unselected cards

	SelectionBg   string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Restaurant status badges.
	Open   string
	Closed string
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	open, closed string
	background   string
	muted        string
}

// Styles builds the text and bar styles for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	bar := lipgloss.NewStyle().Background(lipgloss.Color(t.Surface)).Padding(0, 1)
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),

		Header: bar.Foreground(lipgloss.Color(t.Text)),
		Footer: bar.Foreground(lipgloss.Color(t.Muted)),
		Logo:   fg(t.Warning).Bold(true),

		open:       t.Open,
		closed:     t.Closed,
		background: t.Background,
		muted:      t.Muted,
	}
}

// StatusStyle returns the badge style for a restaurant status ("open" or
// "closed", case-insensitive). Anything else gets the muted color.
func (s Styles) StatusStyle(status string) lipgloss.Style {
	color := s.muted
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "open":
		color = s.open
	case "closed":
		color = s.closed
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// WithBackground returns a copy whose text styles paint bgColor behind
// their glyphs, so text on a bar does not show the terminal default.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	for _, st := range []*lipgloss.Style{
		&out.Text, &out.MutedText, &out.FaintText, &out.AccentText,
		&out.SuccessText, &out.WarningText, &out.DangerText, &out.InfoText,
		&out.Header, &out.Footer, &out.Logo,
	} {
		*st = st.Background(bg)
	}
	return out
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

var themes = map[string]Theme{
	// https://github.com/EdenEast/nightfox.nvim
	"Nightfox": {
		Name:       "Nightfox",
		Background: "#131a24", Surface: "#192330", SurfaceAlt: "#212e3f",
		SelectionBg: "#2b3b51", SelectionText: "#cdcecf",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
		Accent: "#719cd6", Success: "#81b29a", Warning: "#dbc074", Danger: "#c94f6d", Info: "#63cdcf",
		Open: "#81b29a", Closed: "#c94f6d",
	},
	// https://github.com/rebelot/kanagawa.nvim
	"Kanagawa": {
		Name:       "Kanagawa",
		Background: "#16161D", Surface: "#1F1F28", SurfaceAlt: "#2A2A37",
		SelectionBg: "#2D4F67", SelectionText: "#DCD7BA",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
		Accent: "#7E9CD8", Success: "#98BB6C", Warning: "#E6C384", Danger: "#E46876", Info: "#7FB4CA",
		Open: "#98BB6C", Closed: "#E46876",
	},
	// Tailwind slate/sky
	"Slate": {
		Name:       "Slate",
		Background: "#020617", Surface: "#0f172a", SurfaceAlt: "#1e293b",
		SelectionBg: "#0284c7", SelectionText: "#f8fafc",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
		Accent: "#38bdf8", Success: "#22c55e", Warning: "#f59e0b", Danger: "#ef4444", Info: "#06b6d4",
		Open: "#16a34a", Closed: "#dc2626",
	},
}

// GetTheme returns the named theme, or Nightfox for unknown names.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
