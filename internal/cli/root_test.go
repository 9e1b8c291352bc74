package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/visionboard/internal/models"
)

func TestFormatItem(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		item models.VisionItem
		want string
	}{
		{
			name: "plain note",
			item: models.VisionItem{Type: models.ItemTypeText, Content: "remember the garden", CreatedAt: createdAt},
			want: "  [text] remember the garden",
		},
		{
			name: "open goal",
			item: models.VisionItem{Type: models.ItemTypeGoal, Content: "run a 10k", CreatedAt: createdAt},
			want: "○ [goal] run a 10k",
		},
		{
			name: "completed goal",
			item: models.VisionItem{Type: models.ItemTypeGoal, Content: "run a 5k", IsCompleted: true, CreatedAt: createdAt},
			want: "✓ [goal] run a 5k",
		},
		{
			name: "goal with target date",
			item: models.VisionItem{Type: models.ItemTypeGoal, Content: "emergency fund", TargetDate: "2026-12-31", CreatedAt: createdAt},
			want: "○ [goal] emergency fund (by 2026-12-31)",
		},
		{
			name: "image with url",
			item: models.VisionItem{Type: models.ItemTypeImage, Content: "dream kitchen", ImageURL: "https://example.com/k.jpg", CreatedAt: createdAt},
			want: "  [image] dream kitchen <https://example.com/k.jpg>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatItem(tt.item); got != tt.want {
				t.Errorf("FormatItem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPillarName(t *testing.T) {
	if got := PillarName("financial"); got != "Financial Freedom" {
		t.Errorf("PillarName(financial) = %q", got)
	}
	// Unknown IDs fall back to the raw value rather than hiding the item.
	if got := PillarName("retired-pillar"); got != "retired-pillar" {
		t.Errorf("PillarName(retired-pillar) = %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		width     int
		filled    int
	}{
		{name: "empty", completed: 0, total: 4, width: 8, filled: 0},
		{name: "half", completed: 2, total: 4, width: 8, filled: 4},
		{name: "full", completed: 4, total: 4, width: 8, filled: 8},
		{name: "no goals renders empty bar", completed: 0, total: 0, width: 8, filled: 0},
		{name: "over-complete clamps", completed: 9, total: 4, width: 8, filled: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.completed, tt.total, tt.width)
			if n := strings.Count(got, "█"); n != tt.filled {
				t.Errorf("ProgressBar() filled %d cells, want %d (bar %q)", n, tt.filled, got)
			}
			if n := strings.Count(got, "█") + strings.Count(got, "░"); n != tt.width {
				t.Errorf("ProgressBar() width %d, want %d", n, tt.width)
			}
		})
	}
}
