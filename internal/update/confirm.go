package update

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/sandeepkv93/tabdo/internal/model"
	"github.com/sandeepkv93/tabdo/internal/views"
)

func (m *Model) requestDelete(key string) {
	if _, ok := m.ToDos[key]; !ok {
		m.warnMissing("delete", key)
		return
	}
	m.PendingDelete = key
	if m.Mode != ModeConfirm {
		m.prevMode = m.Mode
	}
	m.Mode = ModeConfirm
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.resolveDelete(true)
	case "n", "N", "esc":
		return m.resolveDelete(false)
	}
	return m, nil
}

// resolveDelete closes the dialog and removes the pending record when the
// user confirmed.
func (m Model) resolveDelete(confirmed bool) (Model, tea.Cmd) {
	if m.Mode != ModeConfirm {
		return m, nil
	}
	key := m.PendingDelete
	m.PendingDelete = ""
	m.Mode = m.prevMode
	if m.Mode == "" || m.Mode == ModeConfirm || m.Mode == ModePalette {
		m.Mode = ModeBrowse
	}
	if !confirmed {
		m.Status = StatusBar{Text: "delete cancelled"}
		return m, nil
	}
	next, ok := model.Delete(m.ToDos, key)
	if !ok {
		m.warnMissing("delete", key)
		return m, nil
	}
	m.ToDos = next
	m.ensureCursor()
	m.Status = StatusBar{Text: "to-do deleted"}
	log.WithField("key", key).Debug("to-do deleted")
	cmd := m.saveToDosCmd()
	return m, cmd
}

func (m Model) renderConfirmView() string {
	return views.RenderConfirm(views.ConfirmData{
		Title: "Delete To Do?",
		Body:  "Are you sure?",
		Item:  m.ToDos[m.PendingDelete].Text,
	})
}
