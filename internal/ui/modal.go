package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/foodwagen/internal/form"
	"github.com/five82/foodwagen/internal/state"
)

// Modal is the interface for modal dialogs. Update handles a key and may
// return a command that emits one of the modal messages below; the root
// model performs the corresponding storefront action. View renders the
// dialog against the latest storefront state.
type Modal interface {
	Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd)
	View(theme Theme, view state.View, width, height int) string
}

// Messages emitted by modals.
type (
	closeModalMsg    struct{}
	confirmDeleteMsg struct{}
	submitDraftMsg   struct{ draft form.Draft }
	fieldEditedMsg   struct{ field form.Field }
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
