package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
	"github.com/julianstephens/visionboard/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Board   *board.Store
	Journal *journal.Store
}

// Load pulls both collections out of storage into memory.
func (c *Context) Load() error {
	if err := c.Board.Load(); err != nil {
		return err
	}
	return c.Journal.Load()
}

// FormatItem renders a single item line for list output.
func FormatItem(item models.VisionItem) string {
	marker := " "
	if item.Type == models.ItemTypeGoal {
		if item.IsCompleted {
			marker = "✓"
		} else {
			marker = "○"
		}
	}

	line := fmt.Sprintf("%s [%s] %s", marker, item.Type, item.Content)
	if item.TargetDate != "" {
		line += fmt.Sprintf(" (by %s)", item.TargetDate)
	}
	if item.Type == models.ItemTypeImage && item.ImageURL != "" {
		line += fmt.Sprintf(" <%s>", item.ImageURL)
	}
	return line
}

// PillarName resolves a pillar ID to its display name, falling back to the
// raw ID for data written before a rename.
func PillarName(id string) string {
	if p, ok := pillars.Get(id); ok {
		return p.Name
	}
	return id
}

// ProgressBar renders a simple ASCII completion bar.
func ProgressBar(completed, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := completed * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
