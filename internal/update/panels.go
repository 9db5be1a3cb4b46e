package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tabdo/internal/model"
	"github.com/sandeepkv93/tabdo/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.addInput = textinput.New()
	m.addInput.Prompt = "> "
	m.addInput.Placeholder = m.Category.Placeholder()
	m.addInput.CharLimit = 256
	m.addInput.Width = 48

	m.editInput = textinput.New()
	m.editInput.Prompt = "edit> "
	m.editInput.CharLimit = 256
	m.editInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40

	m.previewPane = viewport.New(m.previewWidth, 10)

	m.saveSpinner = spinner.New()
	m.saveSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	m.ensureCursor()
	m.addInput.Placeholder = m.Category.Placeholder()

	source := ""
	if entry, ok := m.selected(); ok {
		source = entry.ToDo.Text
	}
	// glamour is slow enough that re-rendering on every key is noticeable.
	if source != m.previewSource {
		m.previewSource = source
		m.previewPane.SetContent(views.RenderMarkdown(source, m.previewWidth))
		m.previewPane.GotoTop()
	}
}

func (m Model) renderListView() string {
	entries := m.visible()
	items := make([]views.ListItemData, 0, len(entries))
	for i, e := range entries {
		item := views.ListItemData{
			Row:      i + 1,
			Text:     e.ToDo.Text,
			Complete: e.ToDo.Complete,
			Selected: i == m.Cursor && m.Mode != ModeInput,
		}
		if m.Mode == ModeEdit && e.Key == m.EditKey {
			item.EditView = m.editInput.View()
		}
		items = append(items, item)
	}

	tabs := make([]views.TabData, 0, 2)
	for _, c := range []model.Category{model.CategoryWork, model.CategoryTravel} {
		done, total := model.Counts(m.ToDos, c)
		tabs = append(tabs, views.TabData{Name: string(c), Active: c == m.Category, Done: done, Total: total})
	}

	return views.RenderListPanel(views.ListPanelData{
		Tabs:      tabs,
		InputView: m.addInput.View(),
		Items:     items,
		EmptyText: "nothing in " + string(m.Category) + " yet",
	})
}

func (m Model) renderPreviewView() string {
	entry, ok := m.selected()
	if !ok {
		return views.RenderPreview(views.PreviewData{})
	}
	return views.RenderPreview(views.PreviewData{
		Key:          entry.Key,
		Complete:     entry.ToDo.Complete,
		ViewportView: m.previewPane.View(),
	})
}
