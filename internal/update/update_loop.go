package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/sandeepkv93/tabdo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		m.ensureCursor()
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Mode {
		case ModeConfirm:
			return m.handleConfirmKey(typed)
		case ModePalette:
			return m.handlePaletteKey(typed)
		case ModeInput:
			return m.handleInputKey(typed)
		case ModeEdit:
			return m.handleEditKey(typed)
		default:
			return m.handleBrowseKey(typed)
		}
	case spinner.TickMsg:
		if m.SavesInFlight > 0 {
			var cmd tea.Cmd
			m.saveSpinner, cmd = m.saveSpinner.Update(typed)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.previewPane.Height = max(4, typed.Height-12)
		return m, nil
	case SwitchCategoryMsg:
		return m.switchCategory(typed.Category)
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			log.WithError(typed.Err).Error("app error")
		}
		return m, nil
	case AddToDoMsg:
		return m.addToDo(typed.Text)
	case ToggleToDoMsg:
		return m.toggleToDo(typed.Key)
	case EditToDoMsg:
		return m.editToDo(typed.Key, typed.Text)
	case RequestDeleteMsg:
		m.requestDelete(typed.Key)
		return m, nil
	case ConfirmDeleteMsg:
		return m.resolveDelete(typed.Confirmed)
	case SavedMsg:
		return m.onSaved(typed), nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	if m.SavesInFlight > 0 {
		status = fmt.Sprintf("%s saving %s", m.saveSpinner.View(), status)
	}

	overlay := ""
	if m.Mode == ModeConfirm {
		overlay = m.renderConfirmView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("tabdo | tab: %s | mode: %s", m.Category, m.Mode),
		LeftPane:   m.renderListView(),
		RightPane:  m.renderPreviewView() + m.renderCommandPalette() + m.renderHelpIfVisible(),
		Overlay:    overlay,
		StatusLine: status,
		Footer:     fmt.Sprintf("keys: %s work | %s travel | a add | space done | e edit | d delete | / cmd | %s help | %s quit", m.Keys.Work, m.Keys.Travel, m.Keys.Help, m.Keys.Quit),
	})
}
