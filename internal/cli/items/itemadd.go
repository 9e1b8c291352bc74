package items

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
	"github.com/julianstephens/visionboard/internal/validation"
)

type ItemAddCmd struct {
	Pillar         string `arg:"" help:"Pillar ID (run 'visionboard pillars' for the list)."`
	Content        string `arg:"" optional:"" help:"Item text."`
	Type           string `short:"t" help:"Item type (text|image|quote|goal)." default:"text"`
	ImageURL       string `help:"Image URL (image items only)."`
	TargetDate     string `help:"Target date in YYYY-MM-DD format (goals only)."`
	FromSuggestion int    `help:"Add the Nth pillar suggestion (1-based) as a goal instead of supplying content."`
}

func (c *ItemAddCmd) Validate() error {
	if c.FromSuggestion == 0 && c.Content == "" {
		return fmt.Errorf("either content or --from-suggestion is required")
	}
	if c.FromSuggestion != 0 && c.Content != "" {
		return fmt.Errorf("content and --from-suggestion are mutually exclusive")
	}
	return nil
}

func (c *ItemAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	fields := board.NewItem{
		PillarID:   c.Pillar,
		Type:       models.ItemType(c.Type),
		Content:    c.Content,
		ImageURL:   c.ImageURL,
		TargetDate: c.TargetDate,
	}

	if c.FromSuggestion != 0 {
		pillar, ok := pillars.Get(c.Pillar)
		if !ok {
			return fmt.Errorf("unknown pillar %q", c.Pillar)
		}
		if c.FromSuggestion < 1 || c.FromSuggestion > len(pillar.Suggestions) {
			return fmt.Errorf("pillar %q has %d suggestions, got --from-suggestion=%d",
				c.Pillar, len(pillar.Suggestions), c.FromSuggestion)
		}
		// Suggestions become goals, matching the board's quick-add behavior.
		fields.Type = models.ItemTypeGoal
		fields.Content = pillar.Suggestions[c.FromSuggestion-1]
	}

	if err := validation.ValidateNewItem(fields); err != nil {
		return err
	}

	item, err := ctx.Board.AddItem(fields)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to %s: %s\n", item.Type, cli.PillarName(item.PillarID), item.Content)
	fmt.Printf("  id: %s\n", item.ID)
	return nil
}
