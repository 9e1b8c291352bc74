package items

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/cli"
)

type ItemDeleteCmd struct {
	ID string `arg:"" help:"Item ID."`
}

func (c *ItemDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	item, ok := ctx.Board.GetItem(c.ID)
	if !ok {
		// Deletion is idempotent in the store; tell the user instead of
		// silently succeeding at the command line.
		return fmt.Errorf("item not found: %s", c.ID)
	}

	if err := ctx.Board.DeleteItem(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %s: %s\n", item.Type, item.Content)
	return nil
}
