package views

import (
	"fmt"
	"strings"
)

type SidebarData struct {
	ListView string
	Focused  bool
}

type TaskRowData struct {
	Content   string
	Completed bool
}

type TaskPaneData struct {
	Title     string
	Filter    string
	EntryView string
	Rows      []TaskRowData
	Cursor    int
	Focused   bool
	// ListVisible is false while the collection has no tasks at all.
	ListVisible bool
}

type DialogData struct {
	Heading   string
	InputView string
	Confirm   string
	Cancel    string
	CanSubmit bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

const placeholderMarkdown = `# No Collections

Press **ctrl+n** to create your first collection,
or open the palette with **/** and type ` + "`new <title>`" + `.`

func RenderPlaceholder() string {
	return RenderMarkdown(placeholderMarkdown)
}

func RenderSidebar(data SidebarData) string {
	var b strings.Builder
	b.WriteString(paneTitle("collections", data.Focused) + "\n")
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

func RenderTaskPane(data TaskPaneData) string {
	var b strings.Builder
	b.WriteString(paneTitle(data.Title, data.Focused))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  filter: %s", data.Filter)) + "\n")
	b.WriteString(data.EntryView + "\n")
	if !data.ListVisible {
		b.WriteString(dimStyle.Render("(no tasks yet)"))
		return b.String()
	}
	if len(data.Rows) == 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("(no %s tasks)", strings.ToLower(data.Filter))))
		return b.String()
	}
	for i, row := range data.Rows {
		b.WriteString(renderTaskRow(row, data.Focused && i == data.Cursor) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDialog(data DialogData) string {
	confirm := fmt.Sprintf("[enter] %s", data.Confirm)
	if !data.CanSubmit {
		confirm = dimStyle.Render(confirm)
	}
	return fmt.Sprintf("%s\n%s\n%s  [esc] %s",
		headerStyle.Render(data.Heading),
		data.InputView,
		confirm,
		data.Cancel,
	)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTaskRow(row TaskRowData, selected bool) string {
	box := "[ ]"
	content := row.Content
	if row.Completed {
		box = "[x]"
		content = doneStyle.Render(content)
	}
	cursor := " "
	if selected {
		cursor = selectedStyle.Render(">")
	}
	return fmt.Sprintf("%s %s %s", cursor, box, content)
}

func paneTitle(title string, focused bool) string {
	if focused {
		return selectedStyle.Render(title)
	}
	return headerStyle.Render(title)
}
