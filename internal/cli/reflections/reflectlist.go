package reflections

import (
	"fmt"
	"time"

	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/constants"
)

type ReflectListCmd struct {
	Limit int `short:"n" help:"Show at most this many entries." default:"7"`
}

func (c *ReflectListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	reflections := ctx.Journal.Reflections()
	if len(reflections) == 0 {
		fmt.Println("No reflections yet. Record one with 'visionboard reflect'.")
		return nil
	}

	shown := 0
	for _, r := range reflections {
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		shown++

		fmt.Printf("%s  mood: %s\n", r.Date.Format("Mon 2006-01-02 15:04"), constants.MoodLabels[r.Mood])
		printSection("grateful for", r.Gratitude)
		printSection("wins", r.Wins)
		printSection("improve", r.Improvements)
		fmt.Println()
	}

	fmt.Printf("Streak: %d day(s)\n", ctx.Journal.Streak(time.Now()))
	return nil
}

func printSection(label string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, line := range lines {
		fmt.Printf("    - %s\n", line)
	}
}
