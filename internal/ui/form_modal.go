package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/foodwagen/internal/form"
	"github.com/five82/foodwagen/internal/state"
)

// Focus slots in the meal form. The text inputs come first, in the same
// order as form.Fields; the status toggle is last.
const (
	slotName = iota
	slotRating
	slotAvatar
	slotRestaurantName
	slotRestaurantLogo
	slotStatus
	slotCount
)

var fieldLabels = map[form.Field]string{
	form.FieldName:             "Food Name",
	form.FieldRating:           "Food Rating",
	form.FieldImage:            "Food Image URL",
	form.FieldRestaurantName:   "Restaurant Name",
	form.FieldRestaurantLogo:   "Restaurant Logo URL",
	form.FieldRestaurantStatus: "Restaurant Status",
}

// formModal is the add/edit meal dialog.
type formModal struct {
	mode   state.ModalKind
	inputs [slotStatus]textinput.Model
	status string
	focus  int
}

var _ Modal = formModal{}

func newFormModal(mode state.ModalKind, d form.Draft) formModal {
	slots := [slotStatus]struct {
		placeholder string
		limit       int
		value       string
	}{
		{"Enter food name", 120, d.Name},
		{"Enter food rating", 8, form.FormatRating(d.Rating)},
		{"https://example.com/food-image.jpg", 2048, d.Avatar},
		{"Enter restaurant name", 120, d.RestaurantName},
		{"https://example.com/logo.png", 2048, d.RestaurantLogo},
	}

	f := formModal{mode: mode, status: d.RestaurantStatus}
	if f.status == "" {
		f.status = form.StatusOpen
	}
	for i, slot := range slots {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = slot.placeholder
		ti.CharLimit = slot.limit
		ti.Width = LayoutModalWidth - 10
		ti.SetValue(slot.value)
		f.inputs[i] = ti
	}
	f.inputs[slotName].Focus()
	return f
}

// Draft returns the form contents as an unsaved draft.
func (f formModal) Draft() form.Draft {
	return form.Draft{
		Name:             f.inputs[slotName].Value(),
		Rating:           form.ParseRating(f.inputs[slotRating].Value()),
		Avatar:           strings.TrimSpace(f.inputs[slotAvatar].Value()),
		RestaurantName:   f.inputs[slotRestaurantName].Value(),
		RestaurantLogo:   strings.TrimSpace(f.inputs[slotRestaurantLogo].Value()),
		RestaurantStatus: f.status,
	}
}

// Update handles a key press inside the form.
func (f formModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		return f, emit(closeModalMsg{})
	case key.Matches(msg, keys.Submit):
		return f, emit(submitDraftMsg{draft: f.Draft()})
	case key.Matches(msg, keys.Confirm):
		if f.focus == slotCount-1 {
			return f, emit(submitDraftMsg{draft: f.Draft()})
		}
		return f.moveFocus(1), nil
	case key.Matches(msg, keys.NextField):
		return f.moveFocus(1), nil
	case key.Matches(msg, keys.PrevField):
		return f.moveFocus(-1), nil
	}

	if f.focus == slotStatus {
		if key.Matches(msg, keys.ToggleField) {
			f.status = form.ToggleStatus(f.status)
			return f, emit(fieldEditedMsg{field: form.FieldRestaurantStatus})
		}
		return f, nil
	}

	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	if f.inputs[f.focus].Value() != before {
		cmd = tea.Batch(cmd, emit(fieldEditedMsg{field: form.Fields[f.focus]}))
	}
	return f, cmd
}

func (f formModal) moveFocus(delta int) formModal {
	if f.focus < slotStatus {
		f.inputs[f.focus].Blur()
	}
	f.focus = (f.focus + delta + slotCount) % slotCount
	if f.focus < slotStatus {
		f.inputs[f.focus].Focus()
	}
	return f
}

// View renders the form with the field errors and submission state from view.
func (f formModal) View(theme Theme, view state.View, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	title := ternary(f.mode == state.ModalEdit, "Edit Meal", "Add Meal")
	b.WriteString(styles.Logo.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", LayoutModalWidth-6)))
	b.WriteString("\n\n")

	for slot, field := range form.Fields {
		label := fieldLabels[field]
		if slot == f.focus {
			b.WriteString(styles.AccentText.Render(label))
		} else {
			b.WriteString(styles.MutedText.Render(label))
		}
		b.WriteString("\n")

		if slot == slotStatus {
			b.WriteString(f.renderStatus(theme, styles))
		} else {
			b.WriteString(f.inputs[slot].View())
		}
		b.WriteString("\n")

		if msg := view.FieldErrors[field]; msg != "" {
			b.WriteString(styles.DangerText.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if view.LastError != nil {
		b.WriteString(styles.DangerText.Render(truncate(fmt.Sprintf("Could not save meal: %v", view.LastError), LayoutModalWidth-6)))
		b.WriteString("\n")
	}
	if view.Submitting {
		b.WriteString(styles.WarningText.Render(ternary(f.mode == state.ModalEdit, "Updating Meal...", "Adding Meal...")))
	} else {
		b.WriteString(styles.FaintText.Render("ctrl+s: Save  •  tab: Next field  •  esc: Cancel"))
	}

	return renderModalBox(theme, b.String(), width, height)
}

func (f formModal) renderStatus(theme Theme, styles Styles) string {
	badge := styles.StatusStyle(ternary(f.status == form.StatusOpen, "open", "closed")).Render(f.status)
	if f.focus != slotStatus {
		return badge
	}
	arrow := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return arrow.Render("‹ ") + badge + arrow.Render(" ›") + styles.FaintText.Render("  space to toggle")
}

// renderModalBox centers a bordered dialog over the screen.
func renderModalBox(theme Theme, content string, width, height int) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(LayoutModalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
