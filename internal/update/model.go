package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/tabdo/internal/model"
	"github.com/sandeepkv93/tabdo/internal/persist"
)

type Mode string

const (
	ModeBrowse  Mode = "browse"
	ModeInput   Mode = "input"
	ModeEdit    Mode = "edit"
	ModeConfirm Mode = "confirm"
	ModePalette Mode = "palette"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Work   string
	Travel string
	Help   string
	Quit   string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Persister is the part of persist.Adapter the UI needs. Versions grow with
// every save the model issues, so a store can drop a save that arrives after
// a newer one.
type Persister interface {
	SaveToDosVersion(ctx context.Context, version uint64, c model.Collection) error
	SaveCategoryVersion(ctx context.Context, version uint64, c model.Category) error
}

type Model struct {
	ToDos    model.Collection
	Category model.Category
	Mode     Mode
	Cursor   int
	// EditKey is the record open in the inline editor.
	EditKey string
	// PendingDelete is the record awaiting confirmation.
	PendingDelete string
	prevMode      Mode
	Palette       CommandPaletteState
	HelpVisible   bool
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error
	// SavesInFlight counts save commands that have not reported back.
	SavesInFlight int
	saveVersion   uint64

	ids   model.IDGenerator
	store Persister

	addInput      textinput.Model
	editInput     textinput.Model
	commandInput  textinput.Model
	previewPane   viewport.Model
	saveSpinner   spinner.Model
	helpModel     help.Model
	previewWidth  int
	previewSource string
}

type SwitchCategoryMsg struct {
	Category model.Category
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddToDoMsg struct {
	Text string
}

type ToggleToDoMsg struct {
	Key string
}

type EditToDoMsg struct {
	Key  string
	Text string
}

// RequestDeleteMsg opens the confirm dialog for Key.
type RequestDeleteMsg struct {
	Key string
}

type ConfirmDeleteMsg struct {
	Confirmed bool
}

// SavedMsg reports the outcome of one save command.
type SavedMsg struct {
	Key string
	Err error
}

func NewModel() Model {
	m := Model{
		ToDos:    model.Collection{},
		Category: model.CategoryWork,
		Mode:     ModeBrowse,
		Keys: GlobalKeyMap{
			Work:   "1",
			Travel: "2",
			Help:   "?",
			Quit:   "q",
		},
		ids:          model.UUIDGenerator{},
		previewWidth: DefaultRuntimeConfig().PreviewWidth,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

// NewModelWithStore starts from a loaded snapshot and saves through store.
func NewModelWithStore(snapshot persist.Snapshot, store Persister, cfg RuntimeConfig) Model {
	m := NewModel()
	if snapshot.ToDos != nil {
		m.ToDos = snapshot.ToDos
	}
	if snapshot.Category.IsValid() {
		m.Category = snapshot.Category
	}
	m.store = store
	if cfg.PreviewWidth > 0 {
		m.previewWidth = cfg.PreviewWidth
		m.previewPane.Width = cfg.PreviewWidth
	}
	m.syncBubbleData()
	return m
}

// WithIDGenerator swaps the key source, mainly for deterministic tests.
func (m Model) WithIDGenerator(ids model.IDGenerator) Model {
	if ids != nil {
		m.ids = ids
	}
	return m
}
