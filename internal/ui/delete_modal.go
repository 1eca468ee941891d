package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/foodwagen/internal/state"
)

// deleteModal asks for confirmation before removing the selected meal.
type deleteModal struct{}

var _ Modal = deleteModal{}

func (d deleteModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Accept):
		return d, emit(confirmDeleteMsg{})
	case key.Matches(msg, keys.Decline):
		return d, emit(closeModalMsg{})
	}
	return d, nil
}

func (d deleteModal) View(theme Theme, view state.View, width, height int) string {
	styles := theme.Styles()
	name := "this meal"
	if food, ok := view.Selected(); ok && strings.TrimSpace(food.Name) != "" {
		name = food.Name
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("Delete Meal"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", LayoutModalWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("Are you sure you want to delete "))
	b.WriteString(styles.Text.Bold(true).Render(name))
	b.WriteString(styles.Text.Render("?"))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render("This action cannot be undone."))
	b.WriteString("\n\n")

	if view.LastError != nil {
		b.WriteString(styles.DangerText.Render(truncate(fmt.Sprintf("Could not delete meal: %v", view.LastError), LayoutModalWidth-6)))
		b.WriteString("\n")
	}
	if view.Submitting {
		b.WriteString(styles.WarningText.Render("Deleting..."))
	} else {
		b.WriteString(styles.FaintText.Render("enter/y: Yes  •  esc/n: Cancel"))
	}

	return renderModalBox(theme, b.String(), width, height)
}
