package cli

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/pillars"
)

type PillarsCmd struct {
	Pillar string `arg:"" optional:"" help:"Show details and suggestions for one pillar."`
}

func (c *PillarsCmd) Run(ctx *Context) error {
	if c.Pillar != "" {
		p, ok := pillars.Get(c.Pillar)
		if !ok {
			return fmt.Errorf("unknown pillar %q", c.Pillar)
		}

		fmt.Printf("%s (%s)\n", p.Name, p.ID)
		fmt.Printf("  %s\n\n", p.Description)
		fmt.Println("  Suggestions:")
		for i, s := range p.Suggestions {
			fmt.Printf("    %d. %s\n", i+1, s)
		}
		return nil
	}

	for _, p := range pillars.All() {
		fmt.Printf("%-16s %s\n", p.ID, p.Name)
	}
	return nil
}
