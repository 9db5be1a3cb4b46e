package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/tabdo/internal/commands"
	"github.com/sandeepkv93/tabdo/internal/views"
)

func (m *Model) openPalette() {
	m.Mode = ModePalette
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	if m.Mode == ModePalette {
		m.Mode = ModeBrowse
	}
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m Model) executePaletteCommand() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var follow tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m, follow = m.addToDo(a.Text)
			return commands.Result{Message: fmt.Sprintf("added to %s: %s", m.Category, a.Text)}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			entry, ok := m.entryAtRow(e.Row)
			if !ok {
				return commands.Result{}, rowError(e.Row)
			}
			m, follow = m.editToDo(entry.Key, e.Text)
			if m.ToDos[entry.Key].Text == entry.ToDo.Text {
				return commands.Result{Message: fmt.Sprintf("row %d unchanged", e.Row)}, nil
			}
			return commands.Result{Message: fmt.Sprintf("edited row %d", e.Row)}, nil
		},
		Done: func(r commands.RowArgs) (commands.Result, error) {
			entry, ok := m.entryAtRow(r.Row)
			if !ok {
				return commands.Result{}, rowError(r.Row)
			}
			m, follow = m.toggleToDo(entry.Key)
			m.Cursor = r.Row - 1
			return commands.Result{Message: fmt.Sprintf("toggled row %d", r.Row)}, nil
		},
		Delete: func(r commands.RowArgs) (commands.Result, error) {
			entry, ok := m.entryAtRow(r.Row)
			if !ok {
				return commands.Result{}, rowError(r.Row)
			}
			m.Cursor = r.Row - 1
			m.requestDelete(entry.Key)
			return commands.Result{Message: fmt.Sprintf("confirm delete of row %d", r.Row)}, nil
		},
		Tab: func(t commands.TabArgs) (commands.Result, error) {
			m, follow = m.switchCategory(t.Category)
			return commands.Result{Message: fmt.Sprintf("showing %s", t.Category)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message}
	return m, follow
}

func rowError(row int) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no row %d in this tab", row)}
}

func (m Model) renderCommandPalette() string {
	out := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
	if out == "" {
		return ""
	}
	return "\n\n" + out
}
