package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todo/internal/views"
)

type keyMap struct {
	Quit          key.Binding
	NewCollection key.Binding
	SwitchFocus   key.Binding
	Up            key.Binding
	Down          key.Binding
	Submit        key.Binding
	Toggle        key.Binding
	Edit          key.Binding
	RemoveDone    key.Binding
	CycleFilter   key.Binding
	Palette       key.Binding
	Help          key.Binding
	Cancel        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NewCollection: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new collection")),
		SwitchFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Up:            key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:          key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task / open collection")),
		Toggle:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit task")),
		RemoveDone:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove done tasks")),
		CycleFilter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "cycle filter")),
		Palette:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewCollection, k.SwitchFocus, k.Palette, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewCollection, k.SwitchFocus, k.Up, k.Down, k.Submit},
		{k.Toggle, k.Edit, k.RemoveDone, k.CycleFilter},
		{k.Palette, k.Help, k.Cancel, k.Quit},
	}
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	var plain []string
	for _, b := range m.paneBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", b.Help().Key, b.Help().Desc))
	}
	hm := m.helpModel
	hm.ShowAll = true
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: hm.View(m.Keys),
	})
}

// paneBindings lists the keys that act on the focused pane.
func (m Model) paneBindings() []key.Binding {
	switch m.Focus {
	case PaneSidebar:
		return []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Submit}
	case PaneEntry:
		return []key.Binding{m.Keys.Submit, m.Keys.SwitchFocus}
	case PaneTasks:
		return []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Toggle, m.Keys.Edit, m.Keys.RemoveDone, m.Keys.CycleFilter}
	default:
		return nil
	}
}
