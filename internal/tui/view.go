package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var view string
	switch m.state {
	case constants.StateDashboard:
		view = m.dashboardView()
	case constants.StateBoard:
		view = m.boardView()
	case constants.StateAddItem, constants.StateReflect, constants.StateConfirmDelete:
		view = m.form.View()
	}

	if m.errMsg != "" {
		view += "\n" + errorStyle.Render(m.errMsg)
	}
	return docStyle.Render(view)
}

func (m Model) dashboardView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("My Vision Board"))
	b.WriteString("\n\n")

	streak := m.journal.Streak(time.Now())
	b.WriteString(statStyle.Render(fmt.Sprintf("  %d day streak  ·  %d/%d goals  ·  %d items",
		streak, m.board.CompletedGoals(), m.board.TotalGoals(), len(m.board.Items()))))
	b.WriteString("\n\n")

	for i, p := range pillars.All() {
		items := m.board.ItemsByPillar(p.ID)
		goals, done := 0, 0
		for _, item := range items {
			if item.Type == models.ItemTypeGoal {
				goals++
				if item.IsCompleted {
					done++
				}
			}
		}

		line := fmt.Sprintf("  %-28s %2d items", p.Name, len(items))
		if goals > 0 {
			line += fmt.Sprintf("  %d/%d goals", done, goals)
		}

		if i == m.cursor {
			b.WriteString(selectedPillarStyle.Render("▸" + line[1:]))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(pillarDescription(m.cursor)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func pillarDescription(cursor int) string {
	all := pillars.All()
	if cursor < 0 || cursor >= len(all) {
		return ""
	}
	return "  " + all[cursor].Description
}

func (m Model) boardView() string {
	var b strings.Builder
	b.WriteString(m.itemList.View())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  a add · c toggle goal · d delete · esc back"))
	return b.String()
}
