package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tabdo/internal/model"
)

func (m *Model) beginEdit(entry model.Entry) {
	m.Mode = ModeEdit
	m.EditKey = entry.Key
	m.editInput.SetValue(entry.ToDo.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
}

func (m *Model) endEdit() {
	m.Mode = ModeBrowse
	m.EditKey = ""
	m.editInput.SetValue("")
	m.editInput.Blur()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endEdit()
		return m, nil
	case "enter":
		key, text := m.EditKey, m.editInput.Value()
		m.endEdit()
		return m.editToDo(key, text)
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}
