package ui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/foodwagen/internal/foodapi"
	"github.com/five82/foodwagen/internal/form"
	"github.com/five82/foodwagen/internal/logtail"
	"github.com/five82/foodwagen/internal/prefs"
	"github.com/five82/foodwagen/internal/state"
	"github.com/five82/foodwagen/internal/storefront"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *storefront.Controller
	Logger     *zap.SugaredLogger
	ThemeName  string
	Compact    bool
	PrefsPath  string
	APIBase    string
	LogFile    string
}

// action identifies a storefront call running as a command.
type action int

const (
	actionLoad action = iota
	actionSearch
	actionSubmit
	actionDelete
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctrl      *storefront.Controller
	log       *zap.SugaredLogger
	prefsPath string
	apiBase   string
	logFile   string
	keys      keyMap

	// UI state
	theme   Theme
	width   int
	height  int
	ready   bool
	compact bool

	// Data state
	view   state.View
	cursor int

	// Components
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	cards     viewport.Model

	modal    Modal
	showHelp bool

	showLogs   bool
	logView    viewport.Model
	logEntries []logtail.Entry
	logErr     error

	// In-flight storefront calls. mutating is set while a create, update
	// or delete runs; the open modal ignores keys until it finishes.
	pending  int
	mutating bool

	notice    string
	noticeErr bool
}

// New creates a new Bubble Tea model. The initial list load starts in Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)

	ti := textinput.New()
	ti.Placeholder = "What do you like to eat today?"
	ti.Prompt = "/ "
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))

	return Model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		log:       log,
		prefsPath: prefsPath,
		apiBase:   opts.APIBase,
		logFile:   opts.LogFile,
		keys:      DefaultKeyMap(),
		theme:     theme,
		compact:   opts.Compact,
		view:      state.Initial(),
		search:    ti,
		spinner:   sp,
		pending:   1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.runAction(actionLoad, state.ModalNone, m.ctrl.Load),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.cards = viewport.New(m.width, maxInt(m.height-chromeLines, 1))
		}
		m.ready = true
		m.search.Width = maxInt(m.width-6, 10)
		m.updateCards()
		if m.showLogs {
			m.logView.Width = maxInt(m.width-4, 10)
			m.logView.Height = maxInt(m.height-chromeLines, 1)
			m.setLogContent()
		}
		return m, nil

	case logsLoadedMsg:
		m.logEntries, m.logErr = msg.entries, msg.err
		if msg.err != nil {
			m.log.Warnw("read activity log failed", "path", m.logFile, "error", msg.err)
		}
		m.setLogContent()
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case actionDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.action == actionSubmit || msg.action == actionDelete {
			m.mutating = false
		}
		if msg.action == actionLoad || msg.action == actionSearch {
			m.cursor = 0
			m.cards.GotoTop()
		}
		m.refresh()
		m.noteResult(msg)
		return m, nil

	case closeModalMsg:
		if m.mutating {
			return m, nil
		}
		m.ctrl.Close()
		m.refresh()
		return m, nil

	case fieldEditedMsg:
		m.ctrl.FieldEdited(msg.field)
		m.refresh()
		return m, nil

	case submitDraftMsg:
		if m.mutating {
			return m, nil
		}
		m.mutating = true
		draft := msg.draft
		return m, m.startAction(actionSubmit, m.view.Modal.Kind, func(ctx context.Context) error {
			return m.ctrl.Submit(ctx, draft)
		})

	case confirmDeleteMsg:
		if m.mutating {
			return m, nil
		}
		m.mutating = true
		return m, m.startAction(actionDelete, state.ModalDelete, m.ctrl.ConfirmDelete)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showLogs {
		return m.renderLogs()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.view, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		if m.mutating {
			return m, nil
		}
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg, m.keys)
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
		m.savePrefs()
		m.updateCards()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()

	case key.Matches(msg, m.keys.Compact):
		m.compact = !m.compact
		m.savePrefs()
		m.updateCards()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.view.Query == "" {
			return m, nil
		}
		m.cursor = 0
		return m, m.startAction(actionSearch, state.ModalNone, func(ctx context.Context) error {
			m.ctrl.Search(ctx, "")
			return nil
		})

	case key.Matches(msg, m.keys.Add):
		m.notice = ""
		m.ctrl.OpenAdd()
		m.modal = nil
		m.refresh()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		food, ok := m.selectedFood()
		if !ok {
			return m, nil
		}
		m.notice = ""
		m.ctrl.OpenEdit(food)
		m.modal = nil
		m.refresh()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		food, ok := m.selectedFood()
		if !ok {
			return m, nil
		}
		m.notice = ""
		m.ctrl.OpenDelete(food.ID)
		m.modal = nil
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.LoadMore):
		if !m.view.HasMore() {
			return m, nil
		}
		m.ctrl.LoadMore()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.startAction(actionLoad, state.ModalNone, m.ctrl.Load)
	}

	return m.handleListKey(msg)
}

// handleSearchKey processes keyboard input while the search line has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := m.search.Value()
		m.search.Reset()
		m.search.Blur()
		m.searching = false
		return m, m.startAction(actionSearch, state.ModalNone, func(ctx context.Context) error {
			m.ctrl.Search(ctx, query)
			return nil
		})

	case key.Matches(msg, m.keys.Escape):
		m.search.Reset()
		m.search.Blur()
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleListKey moves the card selection.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.view.Visible())
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = count - 1
	default:
		return m, nil
	}
	m.updateCards()
	return m, nil
}

// refresh pulls the latest storefront state and reconciles the modal and
// selection with it.
func (m *Model) refresh() {
	if m.ctrl != nil {
		m.view = m.ctrl.Snapshot()
	}
	m.syncModal()
	if count := len(m.view.Visible()); m.cursor >= count {
		m.cursor = maxInt(count-1, 0)
	}
	m.updateCards()
}

func (m *Model) syncModal() {
	switch m.view.Modal.Kind {
	case state.ModalNone:
		m.modal = nil
	case state.ModalAdd:
		if m.modal == nil {
			m.modal = newFormModal(state.ModalAdd, form.NewDraft())
		}
	case state.ModalEdit:
		if m.modal == nil {
			if food, ok := m.view.Selected(); ok {
				m.modal = newFormModal(state.ModalEdit, form.DraftFromFood(food))
			}
		}
	case state.ModalDelete:
		if m.modal == nil {
			m.modal = deleteModal{}
		}
	}
}

func (m Model) selectedFood() (foodapi.Food, bool) {
	visible := m.view.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return foodapi.Food{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}); err != nil {
		m.log.Warnw("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

func (m *Model) noteResult(msg actionDoneMsg) {
	m.notice, m.noticeErr = "", false
	switch msg.action {
	case actionSubmit:
		var verr *form.ValidationError
		switch {
		case msg.err == nil:
			m.notice = ternary(msg.kind == state.ModalEdit, "Meal updated", "Meal added")
		case errors.As(msg.err, &verr):
			m.notice, m.noticeErr = "Please fix the highlighted fields", true
		default:
			m.notice, m.noticeErr = failureNotice("Could not save meal", msg.err), true
		}
	case actionDelete:
		if msg.err == nil {
			m.notice = "Meal deleted"
		} else {
			m.notice, m.noticeErr = failureNotice("Could not delete meal", msg.err), true
		}
	case actionLoad:
		if msg.err != nil {
			m.notice, m.noticeErr = "Press r to retry", true
		}
	}
}

// failureNotice marks failures that came back from the food API, as
// opposed to local ones such as a stale selection.
func failureNotice(what string, err error) string {
	if foodapi.IsFetchError(err) {
		return what + " (food API request failed)"
	}
	return what
}

// Messages

type actionDoneMsg struct {
	action action
	kind   state.ModalKind
	err    error
}

// Commands

// startAction records an in-flight call and starts the spinner when it was
// idle.
func (m *Model) startAction(a action, kind state.ModalKind, fn func(context.Context) error) tea.Cmd {
	m.pending++
	cmd := m.runAction(a, kind, fn)
	if m.pending == 1 {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

func (m Model) runAction(a action, kind state.ModalKind, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{action: a, kind: kind, err: fn(ctx)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	ctx := m.ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
