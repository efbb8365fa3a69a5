package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Sidebar    string
	Content    string
	Overlay    string
	StatusLine string
	StatusErr  bool
	Footer     string
	// Width is the terminal width; zero means unknown.
	Width int
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle   = panelStyle.BorderForeground(lipgloss.Color("12"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	sidebarWidth = 26
	minContent   = 40
)

func RenderApp(data AppData) string {
	contentWidth := minContent
	if data.Width > sidebarWidth+minContent+4 {
		contentWidth = data.Width - sidebarWidth - 8
	}

	body := panelStyle.Width(contentWidth).Render(data.Content)
	if data.Sidebar != "" {
		left := panelStyle.Width(sidebarWidth).Render(data.Sidebar)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, body)
	}

	lines := []string{headerStyle.Render(data.Header), body}
	if data.Overlay != "" {
		lines = append(lines, activeStyle.Render(data.Overlay))
	}
	if data.StatusLine != "" {
		if data.StatusErr {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md for the terminal and falls back to the raw text
// when glamour fails.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
