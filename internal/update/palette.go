package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/model"
)

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.entry.Blur()
	m.Status = StatusBar{Text: "command palette active"}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	m.setFocus(m.Focus)
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m = m.closePalette()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, m.paletteHandlers())
	m = m.closePalette()
	m.syncSidebar()
	m.clampCursor()
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	return m
}

// paletteHandlers binds the palette commands to the controller. Handlers may
// move focus and the cursor of m.
func (m *Model) paletteHandlers() commands.Handlers {
	return commands.Handlers{
		New: func(a commands.NewArgs) (commands.Result, error) {
			col, err := m.ctrl.CreateCollection(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			m.Cursor = 0
			m.setFocus(PaneEntry)
			return commands.Result{Message: "created collection: " + col.Title()}, nil
		},
		Select: func(a commands.SelectArgs) (commands.Result, error) {
			if a.Position > 0 {
				if err := m.ctrl.SelectIndex(a.Position - 1); err != nil {
					return commands.Result{}, err
				}
			} else {
				idx := m.ctrl.Collections().IndexFunc(func(c *model.Collection) bool { return c.Title() == a.Title })
				if idx < 0 {
					return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no collection named %q", a.Title)}
				}
				col, _ := m.ctrl.Collections().ItemAt(idx)
				if err := m.ctrl.SelectCollection(col.ID); err != nil {
					return commands.Result{}, err
				}
			}
			m.Cursor = 0
			m.setFocus(PaneEntry)
			return commands.Result{Message: "selected collection: " + m.ctrl.CurrentCollection().Title()}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if err := m.requireCurrent(); err != nil {
				return commands.Result{}, err
			}
			if !m.ctrl.AddTask(a.Content) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires content"}
			}
			return commands.Result{Message: "added task: " + a.Content}, nil
		},
		Toggle: func(a commands.RowArgs) (commands.Result, error) {
			if err := m.requireCurrent(); err != nil {
				return commands.Result{}, err
			}
			if err := m.ctrl.ToggleTask(a.Row - 1); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("toggled task %d", a.Row)}, nil
		},
		Edit: func(a commands.EditArgs) (commands.Result, error) {
			if err := m.requireCurrent(); err != nil {
				return commands.Result{}, err
			}
			if err := m.ctrl.EditTask(a.Row-1, a.Content); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("edited task %d", a.Row)}, nil
		},
		Clear: func() (commands.Result, error) {
			if err := m.requireCurrent(); err != nil {
				return commands.Result{}, err
			}
			n := m.ctrl.RemoveDoneTasks()
			return commands.Result{Message: fmt.Sprintf("removed %d done task(s)", n)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			if err := m.ctrl.SetFilter(a.Setting); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "filter: " + string(a.Setting)}, nil
		},
	}
}

func (m Model) requireCurrent() error {
	if !m.ctrl.HasCurrent() {
		return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no collection selected"}
	}
	return nil
}
