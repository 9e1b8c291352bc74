package reflections

import (
	"fmt"
	"time"

	"github.com/julianstephens/visionboard/internal/cli"
)

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	streak := ctx.Journal.Streak(time.Now())
	switch streak {
	case 0:
		fmt.Println("No streak yet. Reflect today to start one.")
	case 1:
		fmt.Println("1 day streak. Come back tomorrow to keep it going.")
	default:
		fmt.Printf("%d day streak.\n", streak)
	}
	return nil
}
