package items

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
)

type ItemListCmd struct {
	Pillar string `short:"p" help:"Only show items for this pillar."`
	IDs    bool   `help:"Include item IDs in the output."`
}

func (c *ItemListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	if c.Pillar != "" && !pillars.IsValid(c.Pillar) {
		return fmt.Errorf("unknown pillar %q", c.Pillar)
	}

	shown := 0
	for _, p := range pillars.All() {
		if c.Pillar != "" && p.ID != c.Pillar {
			continue
		}

		items := ctx.Board.ItemsByPillar(p.ID)
		if len(items) == 0 {
			continue
		}

		fmt.Printf("%s\n", p.Name)
		for _, item := range items {
			fmt.Printf("  %s\n", cli.FormatItem(item))
			if c.IDs {
				fmt.Printf("      id: %s\n", item.ID)
			}
		}
		shown += len(items)
	}

	if c.Pillar == "" {
		orphans := orphanedItems(ctx.Board.Items())
		if len(orphans) > 0 {
			fmt.Println("(unknown pillar)")
			for _, item := range orphans {
				fmt.Printf("  %s\n", cli.FormatItem(item))
				if c.IDs {
					fmt.Printf("      id: %s\n", item.ID)
				}
			}
			shown += len(orphans)
		}
	}

	if shown == 0 {
		fmt.Println("No items yet. Add one with 'visionboard item add'.")
	}
	return nil
}

// orphanedItems returns items whose pillar is not in the catalog. They are
// kept and listed so old data never silently disappears.
func orphanedItems(all []models.VisionItem) []models.VisionItem {
	var out []models.VisionItem
	for _, item := range all {
		if !pillars.IsValid(item.PillarID) {
			out = append(out, item)
		}
	}
	return out
}
