package system

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/models"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the bundle to this file instead of stdout." type:"path"`
}

// bundle is the export shape: both collections plus the export moment.
type bundle struct {
	ExportedAt  time.Time           `json:"exported_at"`
	Items       []models.VisionItem `json:"items"`
	Reflections []models.Reflection `json:"reflections"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(bundle{
		ExportedAt:  time.Now().UTC(),
		Items:       ctx.Board.Items(),
		Reflections: ctx.Journal.Reflections(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}

	if c.Output == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported %d items and %d reflections to %s\n",
		len(ctx.Board.Items()), ctx.Journal.Count(), c.Output)
	return nil
}
