package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/sandeepkv93/tabdo/internal/model"
)

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Work:
		return m.switchCategory(model.CategoryWork)
	case m.Keys.Travel:
		return m.switchCategory(model.CategoryTravel)
	case "tab":
		return m.switchCategory(m.Category.Toggle())
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "/":
		m.openPalette()
		return m, nil
	case "a", "i":
		m.Mode = ModeInput
		m.addInput.Focus()
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.visible())-1 {
			m.Cursor++
		}
	case " ", "space", "x":
		if entry, ok := m.selected(); ok {
			return m.toggleToDo(entry.Key)
		}
	case "e":
		if entry, ok := m.selected(); ok {
			m.beginEdit(entry)
		}
	case "d", "delete":
		if entry, ok := m.selected(); ok {
			m.requestDelete(entry.Key)
		}
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = ModeBrowse
		m.addInput.Blur()
		return m, nil
	case "enter":
		text := m.addInput.Value()
		m.addInput.SetValue("")
		return m.addToDo(text)
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) switchCategory(c model.Category) (Model, tea.Cmd) {
	if !c.IsValid() {
		return m, nil
	}
	if c == m.Category {
		return m, nil
	}
	m.Category = c
	m.Cursor = 0
	m.addInput.Placeholder = c.Placeholder()
	log.WithField("tab", c).Debug("tab switched")
	cmd := m.saveCategoryCmd()
	return m, cmd
}

func (m Model) addToDo(text string) (Model, tea.Cmd) {
	id, err := m.ids.NewID()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		log.WithError(err).Error("id generation failed")
		return m, nil
	}
	next, ok := model.Add(m.ToDos, id, text, m.Category)
	if !ok {
		return m, nil
	}
	m.ToDos = next
	m.Cursor = m.rowOf(id)
	m.Status = StatusBar{Text: "to-do added"}
	log.WithFields(log.Fields{"key": id, "tab": m.Category}).Debug("to-do added")
	cmd := m.saveToDosCmd()
	return m, cmd
}

func (m Model) toggleToDo(key string) (Model, tea.Cmd) {
	next, ok := model.ToggleComplete(m.ToDos, key)
	if !ok {
		m.warnMissing("toggle", key)
		return m, nil
	}
	m.ToDos = next
	cmd := m.saveToDosCmd()
	return m, cmd
}

func (m Model) editToDo(key, text string) (Model, tea.Cmd) {
	if _, exists := m.ToDos[key]; !exists {
		m.warnMissing("edit", key)
		return m, nil
	}
	next, ok := model.Edit(m.ToDos, key, text)
	if !ok {
		return m, nil
	}
	m.ToDos = next
	m.Status = StatusBar{Text: "to-do updated"}
	cmd := m.saveToDosCmd()
	return m, cmd
}

func (m *Model) warnMissing(op, key string) {
	log.WithFields(log.Fields{"op": op, "key": key}).Warn("to-do not found")
	m.Status = StatusBar{Text: fmt.Sprintf("%s: no to-do %q", op, key), IsError: true}
}

func (m Model) visible() []model.Entry {
	return model.Filter(m.ToDos, m.Category)
}

func (m Model) selected() (model.Entry, bool) {
	items := m.visible()
	if m.Cursor < 0 || m.Cursor >= len(items) {
		return model.Entry{}, false
	}
	return items[m.Cursor], true
}

// entryAtRow resolves a 1-based row of the visible list.
func (m Model) entryAtRow(row int) (model.Entry, bool) {
	items := m.visible()
	if row < 1 || row > len(items) {
		return model.Entry{}, false
	}
	return items[row-1], true
}

func (m Model) rowOf(key string) int {
	for i, e := range m.visible() {
		if e.Key == key {
			return i
		}
	}
	return 0
}

func (m *Model) ensureCursor() {
	n := len(m.visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}
