package update

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/filter"
	"github.com/sandeepkv93/todo/internal/settings"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/window"
)

func newTestModel(t *testing.T, titles ...string) (Model, *window.Controller, string) {
	t.Helper()
	dataPath := filepath.Join(t.TempDir(), "data.json")
	ctrl := window.New(settings.NewMemoryStore(settings.DefaultSchema()), window.WithDataPath(dataPath))
	if err := ctrl.Load(t.Context()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for _, title := range titles {
		if _, err := ctrl.CreateCollection(title); err != nil {
			t.Fatalf("create %q failed: %v", title, err)
		}
	}
	return NewModel(t.Context(), ctrl, zerolog.Nop()), ctrl, dataPath
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func rows(ctrl *window.Controller) []string {
	out := []string{}
	for _, r := range ctrl.Snapshot().Rows {
		out = append(out, r.Content)
	}
	return out
}

func TestNewModelWithoutCollections(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	if m.Focus != PaneSidebar {
		t.Fatalf("expected sidebar focus, got %q", m.Focus)
	}
	if ctrl.StackPage() != window.PagePlaceholder {
		t.Fatalf("expected placeholder page, got %q", ctrl.StackPage())
	}
	if !strings.Contains(m.View(), "Collections") {
		t.Fatalf("expected placeholder in view:\n%s", m.View())
	}
}

func TestNewCollectionDialogCreates(t *testing.T) {
	m, ctrl, _ := newTestModel(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if !m.dialog.active || cmd == nil {
		t.Fatal("expected dialog to open with an await command")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.dialog.active {
		t.Fatal("expected create to be disabled while the title is empty")
	}

	m, _ = send(t, m, runes("Groceries"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.dialog.active {
		t.Fatal("expected dialog to close after create")
	}
	if ctrl.Collections().Len() != 0 {
		t.Fatal("expected creation to wait for the future")
	}

	m, _ = send(t, m, cmd())
	if ctrl.Collections().Len() != 1 || ctrl.CurrentCollection().Title() != "Groceries" {
		t.Fatalf("expected Groceries to be current, got %d collections", ctrl.Collections().Len())
	}
	if !ctrl.ShowContent() || m.Focus != PaneEntry {
		t.Fatalf("expected detail view with entry focus, got show=%v focus=%q", ctrl.ShowContent(), m.Focus)
	}
	if !strings.Contains(m.View(), "Groceries") {
		t.Fatalf("expected collection title in view:\n%s", m.View())
	}
}

func TestNewCollectionDialogCancel(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = send(t, m, runes("Draft"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.dialog.active {
		t.Fatal("expected esc to close dialog")
	}
	m, _ = send(t, m, cmd())
	if ctrl.Collections().Len() != 0 {
		t.Fatal("cancel must not create a collection")
	}
	if m.Status.Text != "new collection cancelled" {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestEntryAddsTaskAndClearsOnSuccess(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Home")
	if m.Focus != PaneEntry {
		t.Fatalf("expected entry focus, got %q", m.Focus)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(rows(ctrl)) != 0 {
		t.Fatal("empty entry must not add a task")
	}

	m, _ = send(t, m, runes("water plants"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := rows(ctrl); len(got) != 1 || got[0] != "water plants" {
		t.Fatalf("unexpected rows: %v", got)
	}
	if m.entry.Value() != "" {
		t.Fatalf("expected entry to be cleared, got %q", m.entry.Value())
	}

	// letters bound to actions are typed while the entry has focus
	m, _ = send(t, m, runes("q"))
	if m.Quitting || m.entry.Value() != "q" {
		t.Fatalf("expected q to be typed, quitting=%v entry=%q", m.Quitting, m.entry.Value())
	}
}

func TestTaskPaneToggleFilterAndRemoveDone(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Work")
	m, _ = send(t, m,
		runes("a"), tea.KeyMsg{Type: tea.KeyEnter},
		runes("b"), tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
	)
	if m.Focus != PaneTasks {
		t.Fatalf("expected task focus, got %q", m.Focus)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	first, _ := ctrl.CurrentCollection().Tasks().ItemAt(0)
	if !first.Completed() {
		t.Fatal("expected first task to be completed")
	}

	m, _ = send(t, m, runes("f"))
	if ctrl.Filter() != filter.Open {
		t.Fatalf("expected Open filter, got %q", ctrl.Filter())
	}
	if got := rows(ctrl); len(got) != 1 || got[0] != "b" {
		t.Fatalf("unexpected open rows: %v", got)
	}

	m, _ = send(t, m, runes("f"), runes("f"), tea.KeyMsg{Type: tea.KeyCtrlD})
	if ctrl.Filter() != filter.All {
		t.Fatalf("expected filter to cycle back to All, got %q", ctrl.Filter())
	}
	if got := rows(ctrl); len(got) != 1 || got[0] != "b" {
		t.Fatalf("unexpected rows after remove: %v", got)
	}
	if m.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.Cursor)
	}
}

func TestEditTask(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Work")
	m, _ = send(t, m, runes("draft"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyTab}, runes("e"))
	if !m.editing {
		t.Fatal("expected edit mode")
	}
	m, _ = send(t, m, runes(" v2"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.editing {
		t.Fatal("expected edit mode to end")
	}
	if got := rows(ctrl); len(got) != 1 || got[0] != "draft v2" {
		t.Fatalf("unexpected rows: %v", got)
	}
}

func TestSidebarSelect(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "One", "Two")
	if ctrl.CurrentIndex() != 1 {
		t.Fatalf("expected second collection current, got %d", ctrl.CurrentIndex())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	if ctrl.CurrentIndex() != 0 {
		t.Fatalf("expected first collection current, got %d", ctrl.CurrentIndex())
	}
	if m.Focus != PaneEntry {
		t.Fatalf("expected entry focus after select, got %q", m.Focus)
	}
}

func TestPaletteCommands(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	m, _ = send(t, m, runes("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette to open")
	}
	m, _ = send(t, m, runes("new Errands"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Palette.Active || ctrl.Collections().Len() != 1 {
		t.Fatalf("expected palette to create collection, status=%+v", m.Status)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("/"), runes("add stamps"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := rows(ctrl); len(got) != 1 || got[0] != "stamps" {
		t.Fatalf("unexpected rows: %v (status %+v)", got, m.Status)
	}

	m, _ = send(t, m, runes("/"), runes("toggle 9"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError || m.LastError == nil {
		t.Fatalf("expected out of range error, got %+v", m.Status)
	}

	m, _ = send(t, m, runes("/"), runes("bogus"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command error, got %+v", m.Status)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(t, m, runes("?"))
	if !m.HelpVisible || !strings.Contains(m.View(), "help:") {
		t.Fatal("expected help panel")
	}
	m, _ = send(t, m, runes("?"))
	if m.HelpVisible {
		t.Fatal("expected help hidden")
	}
}

func TestQuitSavesState(t *testing.T) {
	m, _, dataPath := newTestModel(t, "Keep")
	m, _ = send(t, m, runes("milk"), tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.Quitting {
		t.Fatal("expected quit command")
	}
	closed, err := m.Closed()
	if !closed || err != nil {
		t.Fatalf("expected clean close, closed=%v err=%v", closed, err)
	}

	if _, err := os.Stat(dataPath); err != nil {
		t.Fatalf("expected data file: %v", err)
	}
	data, err := storage.Load(dataPath)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(data) != 1 || data[0].Title != "Keep" || len(data[0].Tasks) != 1 || data[0].Tasks[0].Content != "milk" {
		t.Fatalf("unexpected saved data: %+v", data)
	}
}

func TestPaletteAddReportsRejectedContent(t *testing.T) {
	m, ctrl, _ := newTestModel(t, "Home")
	_, err := m.paletteHandlers().Add(commands.AddArgs{Content: ""})
	var ce *commands.CommandError
	if !errors.As(err, &ce) || ce.Code != commands.ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
	if len(rows(ctrl)) != 0 {
		t.Fatalf("expected no task, got %v", rows(ctrl))
	}
}

func TestCycleFilterWithoutCollections(t *testing.T) {
	m, ctrl, _ := newTestModel(t)
	for _, want := range []filter.Setting{filter.Open, filter.Done, filter.All} {
		m, _ = send(t, m, runes("f"))
		if ctrl.Filter() != want {
			t.Fatalf("expected filter %s, got %s", want, ctrl.Filter())
		}
		if !strings.Contains(m.View(), "filter: "+string(want)) {
			t.Fatalf("expected header to show %s:\n%s", want, m.View())
		}
	}
}
