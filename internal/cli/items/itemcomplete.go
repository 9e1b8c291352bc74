package items

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/models"
)

type ItemCompleteCmd struct {
	ID string `arg:"" help:"Goal item ID."`
}

func (c *ItemCompleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	item, ok := ctx.Board.GetItem(c.ID)
	if !ok {
		return fmt.Errorf("item not found: %s", c.ID)
	}
	if item.Type != models.ItemTypeGoal {
		return fmt.Errorf("item %s is a %s, only goals can be completed", c.ID, item.Type)
	}

	// Toggle, matching the board checkbox.
	completed := !item.IsCompleted
	if err := ctx.Board.UpdateItem(c.ID, models.ItemUpdate{IsCompleted: &completed}); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Completed: %s\n", item.Content)
	} else {
		fmt.Printf("Reopened: %s\n", item.Content)
	}
	return nil
}
