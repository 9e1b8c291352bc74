package boardlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/visionboard/internal/models"
)

type AddItemMsg struct{}

type ToggleGoalMsg struct {
	ID string
}

type DeleteItemMsg struct {
	ID string
}

type BackMsg struct{}

type Item struct {
	VisionItem models.VisionItem
}

func (i Item) Title() string {
	title := i.VisionItem.Content
	switch i.VisionItem.Type {
	case models.ItemTypeGoal:
		if i.VisionItem.IsCompleted {
			title = "✓ " + title
		} else {
			title = "○ " + title
		}
	case models.ItemTypeQuote:
		title = "“" + title + "”"
	}
	return title
}

func (i Item) Description() string {
	switch i.VisionItem.Type {
	case models.ItemTypeGoal:
		if i.VisionItem.IsCompleted {
			return "goal · completed"
		}
		if i.VisionItem.TargetDate != "" {
			return "goal · by " + i.VisionItem.TargetDate
		}
		return "goal"
	case models.ItemTypeImage:
		if i.VisionItem.ImageURL != "" {
			return "image · " + i.VisionItem.ImageURL
		}
		return "image"
	case models.ItemTypeQuote:
		return "quote"
	default:
		return "note"
	}
}

func (i Item) FilterValue() string { return i.VisionItem.Content }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle goal"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(title string, items []models.VisionItem, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func toListItems(items []models.VisionItem) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = Item{VisionItem: item}
	}
	return out
}

// SetItems replaces the list contents after a store mutation.
func (m *Model) SetItems(items []models.VisionItem) {
	m.list.SetItems(toListItems(items))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the item under the cursor.
func (m Model) Selected() (models.VisionItem, bool) {
	if sel, ok := m.list.SelectedItem().(Item); ok {
		return sel.VisionItem, true
	}
	return models.VisionItem{}, false
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddItemMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if sel, ok := m.Selected(); ok && sel.Type == models.ItemTypeGoal {
				id := sel.ID
				return m, func() tea.Msg { return ToggleGoalMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if sel, ok := m.Selected(); ok {
				id := sel.ID
				return m, func() tea.Msg { return DeleteItemMsg{ID: id} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
