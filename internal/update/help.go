package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/tabdo/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Mode:     string(m.Mode),
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Work, Action: "show Work"},
		{Key: m.Keys.Travel, Action: "show Travel"},
		{Key: "tab", Action: "flip tab"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) modeBindings() []KeyBinding {
	switch m.Mode {
	case ModeInput:
		return []KeyBinding{
			{Key: "enter", Action: "add to-do"},
			{Key: "esc", Action: "leave input"},
		}
	case ModeEdit:
		return []KeyBinding{
			{Key: "enter", Action: "save text"},
			{Key: "esc", Action: "discard edit"},
		}
	case ModeConfirm:
		return []KeyBinding{
			{Key: "y", Action: "delete"},
			{Key: "n/esc", Action: "cancel"},
		}
	case ModePalette:
		return []KeyBinding{
			{Key: "enter", Action: "run: add/edit/done/delete/tab"},
			{Key: "esc", Action: "close palette"},
		}
	default:
		return []KeyBinding{
			{Key: "a/i", Action: "focus input"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "space/x", Action: "toggle complete"},
			{Key: "e", Action: "edit text"},
			{Key: "d", Action: "delete (asks first)"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.modeBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.modeBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
