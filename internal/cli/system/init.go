package system

import (
	"fmt"

	"github.com/julianstephens/visionboard/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized visionboard storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
