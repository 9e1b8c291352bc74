package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/cli"
	"github.com/julianstephens/visionboard/internal/cli/items"
	"github.com/julianstephens/visionboard/internal/cli/reflections"
	"github.com/julianstephens/visionboard/internal/cli/system"
	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/errors"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/logger"
	"github.com/julianstephens/visionboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path. A .db path uses SQLite; a directory path uses JSON files." type:"path" default:"~/.config/visionboard/visionboard.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      system.InitCmd         `cmd:"" help:"Initialize visionboard storage."`
	Tui       system.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard cli.DashboardCmd       `cmd:"" help:"Show streak, goal progress, and per-pillar stats."`
	Pillars   cli.PillarsCmd         `cmd:"" help:"List the life pillars and their suggestions."`
	Reflect   reflections.ReflectCmd `cmd:"" help:"Record a daily reflection."`
	Streak    reflections.StreakCmd  `cmd:"" help:"Show the current reflection streak."`
	Export    system.ExportCmd       `cmd:"" help:"Export all data as a JSON bundle."`
	Item      struct {
		Add      items.ItemAddCmd      `cmd:"" help:"Add a new vision item."`
		List     items.ItemListCmd     `cmd:"" help:"List vision items."`
		Edit     items.ItemEditCmd     `cmd:"" help:"Edit an existing item."`
		Delete   items.ItemDeleteCmd   `cmd:"" help:"Delete an item."`
		Complete items.ItemCompleteCmd `cmd:"" help:"Toggle a goal's completion."`
	} `cmd:"" help:"Manage vision items."`
	Reflections struct {
		List reflections.ReflectListCmd `cmd:"" help:"Show past reflections, most recent first."`
	} `cmd:"" help:"Browse reflections."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Life-pillar vision board and daily reflection journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.ForPath(CLI.Config)
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		if err := store.Init(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Board:   board.NewStore(store),
		Journal: journal.NewStore(store),
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// configDir returns the directory logs live under: the parent of a .db file
// path, or the directory itself for a JSON store.
func configDir(path string) string {
	if strings.HasSuffix(path, ".db") {
		return filepath.Dir(path)
	}
	return path
}
