package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/pillars"
	"github.com/julianstephens/visionboard/internal/utils"
)

// The stores trust their callers, so field validation happens here at the
// command/TUI edge before anything reaches them.

func validItemType(t models.ItemType) bool {
	switch t {
	case models.ItemTypeText, models.ItemTypeImage, models.ItemTypeQuote, models.ItemTypeGoal:
		return true
	}
	return false
}

// ValidateNewItem checks caller-supplied item fields before creation.
func ValidateNewItem(fields board.NewItem) error {
	if !pillars.IsValid(fields.PillarID) {
		return fmt.Errorf("unknown pillar %q (expected one of: %s)",
			fields.PillarID, strings.Join(pillars.IDs(), ", "))
	}
	if !validItemType(fields.Type) {
		return fmt.Errorf("unknown item type %q (expected text, image, quote, or goal)", fields.Type)
	}
	if strings.TrimSpace(fields.Content) == "" {
		return fmt.Errorf("item content must not be empty")
	}
	if fields.ImageURL != "" && fields.Type != models.ItemTypeImage {
		return fmt.Errorf("image url is only valid for image items")
	}
	if fields.TargetDate != "" && !utils.ValidDay(fields.TargetDate) {
		return fmt.Errorf("invalid target date %q (expected YYYY-MM-DD)", fields.TargetDate)
	}
	return nil
}

// ValidateItemUpdate checks a partial item update.
func ValidateItemUpdate(update models.ItemUpdate) error {
	if update.PillarID != nil && !pillars.IsValid(*update.PillarID) {
		return fmt.Errorf("unknown pillar %q (expected one of: %s)",
			*update.PillarID, strings.Join(pillars.IDs(), ", "))
	}
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return fmt.Errorf("item content must not be empty")
	}
	if update.TargetDate != nil && *update.TargetDate != "" && !utils.ValidDay(*update.TargetDate) {
		return fmt.Errorf("invalid target date %q (expected YYYY-MM-DD)", *update.TargetDate)
	}
	return nil
}

// ValidateNewReflection checks caller-supplied reflection fields. At least
// one non-empty line across the three sections is required, matching how the
// original entry dialog gated submission.
func ValidateNewReflection(fields journal.NewReflection) error {
	if fields.Mood < constants.MoodMin || fields.Mood > constants.MoodMax {
		return fmt.Errorf("mood must be between %d and %d, got %d",
			constants.MoodMin, constants.MoodMax, fields.Mood)
	}
	if len(fields.Gratitude) == 0 && len(fields.Wins) == 0 && len(fields.Improvements) == 0 {
		return fmt.Errorf("a reflection needs at least one line of gratitude, wins, or improvements")
	}
	return nil
}
