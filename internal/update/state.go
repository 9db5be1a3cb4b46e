package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/sandeepkv93/tabdo/internal/persist"
)

// saveToDosCmd writes a copy of the current collection. Every save carries
// the full state and a version, so the newest mutation wins even when saves
// finish out of order.
func (m *Model) saveToDosCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	m.saveVersion++
	store, version, todos := m.store, m.saveVersion, m.ToDos
	return m.trackSave(func() tea.Msg {
		err := store.SaveToDosVersion(context.Background(), version, todos)
		return SavedMsg{Key: persist.ToDosKey, Err: err}
	})
}

func (m *Model) saveCategoryCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	m.saveVersion++
	store, version, category := m.store, m.saveVersion, m.Category
	return m.trackSave(func() tea.Msg {
		err := store.SaveCategoryVersion(context.Background(), version, category)
		return SavedMsg{Key: persist.TabKey, Err: err}
	})
}

func (m *Model) trackSave(save tea.Cmd) tea.Cmd {
	m.SavesInFlight++
	if m.SavesInFlight == 1 {
		return tea.Batch(save, m.saveSpinner.Tick)
	}
	return save
}

func (m Model) onSaved(msg SavedMsg) Model {
	if m.SavesInFlight > 0 {
		m.SavesInFlight--
	}
	if msg.Err != nil {
		m.LastError = msg.Err
		m.Status = StatusBar{Text: msg.Err.Error(), IsError: true}
		log.WithField("key", msg.Key).WithError(msg.Err).Error("save failed")
		return m
	}
	log.WithField("key", msg.Key).Debug("save acknowledged")
	return m
}
