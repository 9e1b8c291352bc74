package items

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/validation"
)

type ItemEditCmd struct {
	ID         string  `arg:"" help:"Item ID."`
	Content    *string `help:"New item text."`
	Pillar     *string `help:"Move the item to another pillar."`
	ImageURL   *string `help:"New image URL."`
	TargetDate *string `help:"New target date (YYYY-MM-DD), empty to clear."`
	Progress   *int    `help:"Progress value."`
}

func (c *ItemEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Board.GetItem(c.ID); !ok {
		return fmt.Errorf("item not found: %s", c.ID)
	}

	update := models.ItemUpdate{
		PillarID:   c.Pillar,
		Content:    c.Content,
		ImageURL:   c.ImageURL,
		TargetDate: c.TargetDate,
		Progress:   c.Progress,
	}
	if err := validation.ValidateItemUpdate(update); err != nil {
		return err
	}

	if err := ctx.Board.UpdateItem(c.ID, update); err != nil {
		return err
	}

	item, _ := ctx.Board.GetItem(c.ID)
	fmt.Printf("Updated: %s\n", cli.FormatItem(item))
	return nil
}
