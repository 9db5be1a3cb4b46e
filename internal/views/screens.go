package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	doneStyle        = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	confirmTitle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

type TabData struct {
	Name   string
	Active bool
	Done   int
	Total  int
}

type ListItemData struct {
	Row      int
	Text     string
	Complete bool
	Selected bool
	// EditView replaces the text while the row is being edited.
	EditView string
}

type ListPanelData struct {
	Tabs      []TabData
	InputView string
	Items     []ListItemData
	EmptyText string
}

type ConfirmData struct {
	Title string
	Body  string
	Item  string
}

type PreviewData struct {
	Key          string
	Complete     bool
	ViewportView string
}

type HelpPanelData struct {
	Mode     string
	Bindings []string
	HelpView string
}

func RenderTabs(tabs []TabData) string {
	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := fmt.Sprintf("%s %d/%d", tab.Name, tab.Done, tab.Total)
		if tab.Active {
			parts = append(parts, activeTabStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, inactiveTabStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, "   ")
}

func RenderListPanel(data ListPanelData) string {
	var b strings.Builder
	b.WriteString(RenderTabs(data.Tabs) + "\n\n")
	b.WriteString(data.InputView + "\n\n")
	if len(data.Items) == 0 {
		b.WriteString(inactiveTabStyle.Render(data.EmptyText))
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		b.WriteString(renderListItem(item) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func renderListItem(item ListItemData) string {
	cursor := "  "
	if item.Selected {
		cursor = cursorStyle.Render("> ")
	}
	box := "[ ]"
	if item.Complete {
		box = "[x]"
	}
	text := item.Text
	switch {
	case item.EditView != "":
		text = item.EditView
	case item.Complete:
		text = doneStyle.Render(item.Text)
	}
	return fmt.Sprintf("%s%2d %s %s", cursor, item.Row, box, text)
}

func RenderConfirm(data ConfirmData) string {
	var b strings.Builder
	b.WriteString(confirmTitle.Render(data.Title) + "\n")
	b.WriteString(data.Body + "\n\n")
	if data.Item != "" {
		b.WriteString(fmt.Sprintf("%q\n\n", data.Item))
	}
	b.WriteString("[y] OK   [n] Cancel")
	return b.String()
}

func RenderPreview(data PreviewData) string {
	if strings.TrimSpace(data.Key) == "" {
		return "preview:\n(no selection)"
	}
	state := "open"
	if data.Complete {
		state = "complete"
	}
	return fmt.Sprintf("preview:\nstate: %s\n\n%s", state, data.ViewportView)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.Mode),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
