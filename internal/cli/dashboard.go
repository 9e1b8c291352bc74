package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	streak := ctx.Journal.Streak(time.Now())
	totalGoals := ctx.Board.TotalGoals()
	completedGoals := ctx.Board.CompletedGoals()
	totalItems := len(ctx.Board.Items())

	fmt.Println("My Vision Board")
	fmt.Println()
	fmt.Printf("  Day streak:   %d\n", streak)
	fmt.Printf("  Active goals: %d\n", totalGoals)
	fmt.Printf("  Completed:    %d\n", completedGoals)
	fmt.Printf("  Vision items: %d\n", totalItems)

	if totalGoals > 0 {
		percent := completedGoals * 100 / totalGoals
		fmt.Println()
		fmt.Printf("  Overall progress  %s %d%%\n", ProgressBar(completedGoals, totalGoals, 20), percent)
	}

	fmt.Println()
	fmt.Println("Life Pillars")
	for _, p := range pillars.All() {
		items := ctx.Board.ItemsByPillar(p.ID)

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
			line += fmt.Sprintf("  %d/%d goals %s", done, goals, ProgressBar(done, goals, 10))
		}
		fmt.Println(line)
	}

	return nil
}
