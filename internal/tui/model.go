package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/pillars"
	"github.com/julianstephens/visionboard/internal/tui/components/boardlist"
)

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Reflect key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open pillar"),
		),
		Reflect: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reflect"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Reflect, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.Reflect, k.Help, k.Quit},
	}
}

type Model struct {
	board   *board.Store
	journal *journal.Store

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	cursor    int // selected pillar on the dashboard
	pillar    pillars.Pillar
	itemList  boardlist.Model
	form      *huh.Form
	itemForm  *ItemFormModel
	reflForm  *ReflectionFormModel
	deleteID  string
	confirmed bool
	errMsg    string

	width    int
	height   int
	quitting bool
}

func NewModel(b *board.Store, j *journal.Store) Model {
	return Model{
		board:   b,
		journal: j,
		state:   constants.StateDashboard,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) openPillar(p pillars.Pillar) {
	m.pillar = p
	m.itemList = boardlist.New(p.Name, m.board.ItemsByPillar(p.ID), m.listWidth(), m.listHeight())
	m.state = constants.StateBoard
}

func (m *Model) refreshItems() {
	m.itemList.SetItems(m.board.ItemsByPillar(m.pillar.ID))
}

func (m *Model) listWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 4
}

func (m *Model) listHeight() int {
	if m.height == 0 {
		return 20
	}
	return m.height - 6
}
