package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/window"
)

// Pane is the part of the window receiving keys.
type Pane string

const (
	PaneSidebar Pane = "sidebar"
	PaneEntry   Pane = "entry"
	PaneTasks   Pane = "tasks"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	ctx  context.Context
	ctrl *window.Controller
	log  zerolog.Logger

	Focus       Pane
	Cursor      int
	HelpVisible bool
	Palette     CommandPaletteState
	Status      StatusBar
	Keys        keyMap
	Quitting    bool
	LastError   error

	sidebar      list.Model
	entry        textinput.Model
	editor       textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	dialog       dialog

	editing bool
	editRow int
	width   int

	closed   bool
	closeErr error
}

type collectionItem struct {
	title string
}

func (i collectionItem) FilterValue() string { return i.title }
func (i collectionItem) Title() string       { return i.title }
func (i collectionItem) Description() string { return "" }

// NewModel wraps a loaded controller. ctx bounds the dialog futures and the
// final save.
func NewModel(ctx context.Context, ctrl *window.Controller, log zerolog.Logger) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	sidebar := list.New(nil, delegate, 24, 14)
	sidebar.SetShowTitle(false)
	sidebar.SetShowHelp(false)
	sidebar.SetShowStatusBar(false)
	sidebar.SetFilteringEnabled(false)
	sidebar.SetShowPagination(false)

	entry := textinput.New()
	entry.Placeholder = "New task"
	entry.Prompt = "+ "
	entry.CharLimit = 512

	editor := textinput.New()
	editor.Prompt = "edit: "
	editor.CharLimit = 512

	commandInput := textinput.New()
	commandInput.Prompt = "/"
	commandInput.Placeholder = "new, select, add, toggle, edit, clear, filter"

	m := Model{
		ctx:          ctx,
		ctrl:         ctrl,
		log:          logging.Component(log, "tui"),
		Focus:        PaneSidebar,
		Keys:         defaultKeyMap(),
		sidebar:      sidebar,
		entry:        entry,
		editor:       editor,
		commandInput: commandInput,
		helpModel:    help.New(),
		dialog:       newDialog(),
	}
	m.syncSidebar()
	if ctrl.HasCurrent() {
		m.setFocus(PaneEntry)
	}
	return m
}

// Closed reports whether quitting already saved through the controller, and
// with what result.
func (m Model) Closed() (bool, error) {
	return m.closed, m.closeErr
}

func (m *Model) setFocus(p Pane) {
	if p != PaneSidebar && !m.ctrl.HasCurrent() {
		p = PaneSidebar
	}
	m.Focus = p
	if p == PaneEntry {
		m.entry.Focus()
	} else {
		m.entry.Blur()
	}
}

func (m *Model) nextFocus() {
	switch m.Focus {
	case PaneSidebar:
		m.setFocus(PaneEntry)
	case PaneEntry:
		if m.ctrl.TaskListVisible() {
			m.setFocus(PaneTasks)
		} else {
			m.setFocus(PaneSidebar)
		}
	default:
		m.setFocus(PaneSidebar)
	}
}

// syncSidebar mirrors the collection titles into the list component and keeps
// the current collection highlighted.
func (m *Model) syncSidebar() {
	cols := m.ctrl.Collections().Items()
	items := make([]list.Item, 0, len(cols))
	for _, col := range cols {
		items = append(items, collectionItem{title: col.Title()})
	}
	m.sidebar.SetItems(items)
	if idx := m.ctrl.CurrentIndex(); idx >= 0 {
		m.sidebar.Select(idx)
	}
}

func (m *Model) clampCursor() {
	rows := 0
	if view := m.ctrl.Tasks(); view != nil {
		rows = view.Len()
	}
	if m.Cursor >= rows {
		m.Cursor = rows - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedTask() (*model.Task, bool) {
	view := m.ctrl.Tasks()
	if view == nil {
		return nil, false
	}
	return view.ItemAt(m.Cursor)
}
