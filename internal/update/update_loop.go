package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
	"github.com/sandeepkv93/todo/internal/window"
)

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		if typed.Height > 8 {
			m.sidebar.SetHeight(typed.Height - 8)
		}
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			return m.quit()
		}
		if m.dialog.active {
			return m.handleDialogKey(typed)
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.editing {
			return m.handleEditKey(typed)
		}
		return m.handleKey(typed)
	case collectionTitleMsg:
		return m.applyCollectionTitle(typed), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}

	var cmd tea.Cmd
	if m.Focus == PaneEntry {
		m.entry, cmd = m.entry.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.NewCollection):
		return m.openNewCollectionDialog()
	case key.Matches(msg, m.Keys.SwitchFocus):
		m.nextFocus()
		return m, nil
	case key.Matches(msg, m.Keys.RemoveDone):
		if m.ctrl.HasCurrent() {
			n := m.ctrl.RemoveDoneTasks()
			m.clampCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("removed %d done task(s)", n)}
		}
		return m, nil
	}

	if m.Focus == PaneEntry {
		return m.handleEntryKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m.quit()
	case key.Matches(msg, m.Keys.Palette):
		return m.openPalette(), nil
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case key.Matches(msg, m.Keys.CycleFilter):
		if err := m.ctrl.CycleFilter(); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.clampCursor()
		m.Status = StatusBar{Text: "filter: " + string(m.ctrl.Filter())}
		return m, nil
	}

	if m.Focus == PaneSidebar {
		return m.handleSidebarKey(msg), nil
	}
	return m.handleTasksKey(msg), nil
}

func (m Model) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Submit):
		if !m.ctrl.HasCurrent() {
			return m, nil
		}
		content := m.entry.Value()
		if m.ctrl.AddTask(content) {
			m.entry.SetValue("")
			m.Status = StatusBar{Text: "added task: " + content}
		}
		return m, nil
	case key.Matches(msg, m.Keys.Cancel):
		m.setFocus(PaneSidebar)
		return m, nil
	}
	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.sidebar.CursorUp()
	case key.Matches(msg, m.Keys.Down):
		m.sidebar.CursorDown()
	case key.Matches(msg, m.Keys.Submit):
		if m.ctrl.State() == window.StateNoCollections {
			return m
		}
		if err := m.ctrl.SelectIndex(m.sidebar.Index()); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m
		}
		m.Cursor = 0
		m.setFocus(PaneEntry)
		m.Status = StatusBar{Text: "selected collection: " + m.ctrl.CurrentCollection().Title()}
	}
	return m
}

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.Keys.Up):
		m.Cursor--
		m.clampCursor()
	case key.Matches(msg, m.Keys.Down):
		m.Cursor++
		m.clampCursor()
	case key.Matches(msg, m.Keys.Toggle):
		if err := m.ctrl.ToggleTask(m.Cursor); err != nil {
			return m
		}
		m.clampCursor()
	case key.Matches(msg, m.Keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			return m
		}
		m.editing = true
		m.editRow = m.Cursor
		m.editor.SetValue(task.Content())
		m.editor.CursorEnd()
		m.editor.Focus()
	case key.Matches(msg, m.Keys.Cancel):
		m.setFocus(PaneEntry)
	}
	return m
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.stopEditing()
		return m, nil
	case key.Matches(msg, m.Keys.Submit):
		if err := m.ctrl.EditTask(m.editRow, m.editor.Value()); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.stopEditing()
		m.Status = StatusBar{Text: "task updated"}
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.editor.Blur()
	m.editor.SetValue("")
}

// quit saves through the controller once; the result is reported by Closed.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.dialog.active {
		m.dialog.resolve(window.Response{})
	}
	if !m.closed {
		m.closed = true
		m.closeErr = m.ctrl.Close(m.ctx)
		if m.closeErr != nil {
			m.log.Error().Err(m.closeErr).Msg("save on quit failed")
		}
	}
	m.Quitting = true
	return m, tea.Quit
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	snap := m.ctrl.Snapshot()

	content := views.RenderPlaceholder()
	sidebar := ""
	if snap.Page == window.PageMain {
		sidebar = views.RenderSidebar(views.SidebarData{ListView: m.sidebar.View(), Focused: m.Focus == PaneSidebar})
		content = m.renderTaskPane(snap)
	}

	overlay := m.renderDialog()
	if overlay == "" && m.Palette.Active {
		overlay = views.RenderCommandPalette(true, m.commandInput.View())
	}
	if overlay == "" {
		overlay = m.renderHelpIfVisible()
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todo | collections: %d | filter: %s", len(snap.Collections), snap.Filter),
		Sidebar:    sidebar,
		Content:    content,
		Overlay:    overlay,
		StatusLine: status,
		StatusErr:  m.Status.IsError,
		Footer:     m.helpModel.View(m.Keys),
		Width:      m.width,
	})
}

func (m Model) renderTaskPane(snap window.Snapshot) string {
	if snap.Current < 0 {
		return "select a collection"
	}
	rows := make([]views.TaskRowData, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		rows = append(rows, views.TaskRowData{Content: r.Content, Completed: r.Completed})
	}
	entry := m.entry.View()
	if m.editing {
		entry = m.editor.View()
	}
	return views.RenderTaskPane(views.TaskPaneData{
		Title:       snap.Collections[snap.Current],
		Filter:      string(snap.Filter),
		EntryView:   entry,
		Rows:        rows,
		Cursor:      m.Cursor,
		Focused:     m.Focus == PaneTasks,
		ListVisible: snap.TaskListVisible,
	})
}
