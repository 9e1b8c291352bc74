package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/visionboard/internal/constants"
)

type ItemFormModel struct {
	Type       string
	Content    string
	ImageURL   string
	TargetDate string
}

type ReflectionFormModel struct {
	Gratitude    string
	Wins         string
	Improvements string
	Mood         int
}

func NewItemForm(m *ItemFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What kind of item?").
				Options(
					huh.NewOption("Goal", "goal"),
					huh.NewOption("Quote", "quote"),
					huh.NewOption("Note", "text"),
					huh.NewOption("Image", "image"),
				).
				Value(&m.Type),
			huh.NewText().
				Title("Content").
				Value(&m.Content),
			huh.NewInput().
				Title("Image URL (image items only)").
				Value(&m.ImageURL),
			huh.NewInput().
				Title("Target date (YYYY-MM-DD, optional)").
				Value(&m.TargetDate),
		),
	)
}

// NewReflectionForm mirrors the original three-step reflection dialog as one
// huh form: gratitude, wins, improvements, then a mood rating.
func NewReflectionForm(m *ReflectionFormModel) *huh.Form {
	moodOptions := make([]huh.Option[int], 0, constants.MoodMax)
	for mood := constants.MoodMin; mood <= constants.MoodMax; mood++ {
		moodOptions = append(moodOptions, huh.NewOption(constants.MoodLabels[mood], mood))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you grateful for today?").
				Description("One per line.").
				Value(&m.Gratitude),
			huh.NewText().
				Title("What were your wins?").
				Description("One per line.").
				Value(&m.Wins),
			huh.NewText().
				Title("What could be better?").
				Description("One per line.").
				Value(&m.Improvements),
			huh.NewSelect[int]().
				Title("How would you rate your overall mood today?").
				Options(moodOptions...).
				Value(&m.Mood),
		),
	)
}

func NewDeleteConfirm(content string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete this item?").
				Description(content).
				Affirmative("Delete").
				Negative("Keep").
				Value(confirmed),
		),
	)
}
