package reflections

import (
	"fmt"
	"time"

	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/utils"
	"github.com/julianstephens/visionboard/internal/validation"
)

type ReflectCmd struct {
	Gratitude    string `short:"g" help:"What are you grateful for? Separate lines with \\n."`
	Wins         string `short:"w" help:"Today's wins. Separate lines with \\n."`
	Improvements string `short:"i" help:"What could be better? Separate lines with \\n."`
	Mood         int    `short:"m" help:"Mood rating (1-5)." default:"3"`
}

func (c *ReflectCmd) Run(ctx *cli.Context) error {
	if err := ctx.Load(); err != nil {
		return err
	}

	fields := journal.NewReflection{
		Date:         time.Now(),
		Gratitude:    utils.SplitLines(c.Gratitude),
		Wins:         utils.SplitLines(c.Wins),
		Improvements: utils.SplitLines(c.Improvements),
		Mood:         c.Mood,
	}
	if err := validation.ValidateNewReflection(fields); err != nil {
		return err
	}

	if _, err := ctx.Journal.AddReflection(fields); err != nil {
		return err
	}

	streak := ctx.Journal.Streak(time.Now())
	fmt.Printf("Reflection saved. Mood: %s. Current streak: %d day(s).\n",
		constants.MoodLabels[c.Mood], streak)
	return nil
}
