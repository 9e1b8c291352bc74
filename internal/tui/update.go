package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
	"github.com/julianstephens/visionboard/internal/tui/components/boardlist"
	"github.com/julianstephens/visionboard/internal/utils"
	"github.com/julianstephens/visionboard/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.state == constants.StateBoard {
			m.itemList.SetSize(m.listWidth(), m.listHeight())
		}
		return m, nil

	case boardlist.AddItemMsg:
		m.itemForm = &ItemFormModel{Type: string(models.ItemTypeGoal)}
		m.form = NewItemForm(m.itemForm)
		m.previousState = constants.StateBoard
		m.state = constants.StateAddItem
		return m, m.form.Init()

	case boardlist.ToggleGoalMsg:
		if item, ok := m.board.GetItem(msg.ID); ok && item.Type == models.ItemTypeGoal {
			completed := !item.IsCompleted
			if err := m.board.UpdateItem(msg.ID, models.ItemUpdate{IsCompleted: &completed}); err != nil {
				m.errMsg = err.Error()
			}
			m.refreshItems()
		}
		return m, nil

	case boardlist.DeleteItemMsg:
		if item, ok := m.board.GetItem(msg.ID); ok {
			m.deleteID = msg.ID
			m.confirmed = false
			m.form = NewDeleteConfirm(item.Content, &m.confirmed)
			m.previousState = constants.StateBoard
			m.state = constants.StateConfirmDelete
			return m, m.form.Init()
		}
		return m, nil

	case boardlist.BackMsg:
		m.state = constants.StateDashboard
		return m, nil
	}

	switch m.state {
	case constants.StateDashboard:
		return m.updateDashboard(msg)
	case constants.StateBoard:
		var cmd tea.Cmd
		m.itemList, cmd = m.itemList.Update(msg)
		return m, cmd
	case constants.StateAddItem:
		return m.updateAddItem(msg)
	case constants.StateReflect:
		return m.updateReflect(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	all := pillars.All()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(all)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Open):
		m.openPillar(all[m.cursor])
	case key.Matches(keyMsg, m.keys.Reflect):
		m.reflForm = &ReflectionFormModel{Mood: 3}
		m.form = NewReflectionForm(m.reflForm)
		m.previousState = constants.StateDashboard
		m.state = constants.StateReflect
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateAddItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fields := board.NewItem{
			PillarID:   m.pillar.ID,
			Type:       models.ItemType(m.itemForm.Type),
			Content:    m.itemForm.Content,
			TargetDate: m.itemForm.TargetDate,
		}
		if fields.Type == models.ItemTypeImage {
			fields.ImageURL = m.itemForm.ImageURL
		}

		if err := validation.ValidateNewItem(fields); err != nil {
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		if _, err := m.board.AddItem(fields); err != nil {
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}

		m.errMsg = ""
		m.refreshItems()
		m.state = constants.StateBoard
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateReflect(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		fields := journal.NewReflection{
			Date:         time.Now(),
			Gratitude:    utils.SplitLines(m.reflForm.Gratitude),
			Wins:         utils.SplitLines(m.reflForm.Wins),
			Improvements: utils.SplitLines(m.reflForm.Improvements),
			Mood:         m.reflForm.Mood,
		}

		if err := validation.ValidateNewReflection(fields); err != nil {
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		if _, err := m.journal.AddReflection(fields); err != nil {
			m.errMsg = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}

		m.errMsg = ""
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.confirmed {
			if err := m.board.DeleteItem(m.deleteID); err != nil {
				m.errMsg = err.Error()
			}
			m.refreshItems()
		}
		m.deleteID = ""
		m.state = m.previousState
	case huh.StateAborted:
		m.deleteID = ""
		m.state = m.previousState
	}
	return m, cmd
}
