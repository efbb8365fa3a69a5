package update

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
	"github.com/sandeepkv93/todo/internal/window"
)

// collectionTitleMsg carries the answer of the new-collection dialog back to
// the Update loop.
type collectionTitleMsg struct {
	Title string
	OK    bool
}

// dialog is the in-terminal Prompter. RequestInput only opens the dialog; the
// answer is delivered on the Future once the user confirms or cancels.
type dialog struct {
	active bool
	prompt window.Prompt
	input  textinput.Model
	reply  chan window.Response
}

func newDialog() dialog {
	in := textinput.New()
	in.CharLimit = 256
	return dialog{input: in}
}

func (d *dialog) RequestInput(_ context.Context, p window.Prompt) window.Future {
	// an unanswered earlier prompt counts as cancelled
	d.resolve(window.Response{})

	d.active = true
	d.prompt = p
	d.reply = make(chan window.Response, 1)
	d.input.Reset()
	d.input.Placeholder = p.Placeholder
	d.input.Focus()
	return d.reply
}

// CanSubmit reports whether the confirm action is enabled.
func (d *dialog) CanSubmit() bool {
	return d.input.Value() != ""
}

func (d *dialog) resolve(r window.Response) {
	if d.reply == nil {
		return
	}
	d.reply <- r
	d.reply = nil
	d.active = false
	d.input.Blur()
}

// awaitCollectionTitle waits for the dialog off the Update loop; creation
// happens when the message comes back.
func awaitCollectionTitle(ctx context.Context, ctrl *window.Controller, f window.Future) tea.Cmd {
	return func() tea.Msg {
		title, ok := ctrl.AwaitTitle(ctx, f)
		return collectionTitleMsg{Title: title, OK: ok}
	}
}

func (m Model) openNewCollectionDialog() (Model, tea.Cmd) {
	f := m.dialog.RequestInput(m.ctx, window.NewCollectionPrompt)
	return m, awaitCollectionTitle(m.ctx, m.ctrl, f)
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog.resolve(window.Response{})
		return m, nil
	case "enter":
		if !m.dialog.CanSubmit() {
			return m, nil
		}
		m.dialog.resolve(window.Response{Text: m.dialog.input.Value(), OK: true})
		return m, nil
	}
	var cmd tea.Cmd
	m.dialog.input, cmd = m.dialog.input.Update(msg)
	return m, cmd
}

func (m Model) applyCollectionTitle(msg collectionTitleMsg) Model {
	if !msg.OK {
		m.Status = StatusBar{Text: "new collection cancelled"}
		return m
	}
	col, err := m.ctrl.CreateCollection(msg.Title)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Cursor = 0
	m.syncSidebar()
	m.setFocus(PaneEntry)
	m.Status = StatusBar{Text: "created collection: " + col.Title()}
	return m
}

func (m Model) renderDialog() string {
	if !m.dialog.active {
		return ""
	}
	p := m.dialog.prompt
	return views.RenderDialog(views.DialogData{
		Heading:   p.Heading,
		InputView: m.dialog.input.View(),
		Confirm:   strings.ToLower(p.Confirm),
		Cancel:    strings.ToLower(p.Cancel),
		CanSubmit: m.dialog.CanSubmit(),
	})
}
