package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/visionboard/internal/board"
	"github.com/julianstephens/visionboard/internal/journal"
	"github.com/julianstephens/visionboard/internal/models"
)

func TestValidateNewItem(t *testing.T) {
	tests := []struct {
		name    string
		fields  board.NewItem
		wantErr bool
	}{
		{
			name: "valid goal",
			fields: board.NewItem{
				PillarID: "physical-health",
				Type:     models.ItemTypeGoal,
				Content:  "Exercise 4x per week",
			},
			wantErr: false,
		},
		{
			name: "valid image with url",
			fields: board.NewItem{
				PillarID: "lifestyle",
				Type:     models.ItemTypeImage,
				Content:  "Dream kitchen",
				ImageURL: "https://example.com/kitchen.jpg",
			},
			wantErr: false,
		},
		{
			name: "unknown pillar",
			fields: board.NewItem{
				PillarID: "time-travel",
				Type:     models.ItemTypeText,
				Content:  "note",
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			fields: board.NewItem{
				PillarID: "career",
				Type:     models.ItemType("video"),
				Content:  "clip",
			},
			wantErr: true,
		},
		{
			name: "empty content",
			fields: board.NewItem{
				PillarID: "career",
				Type:     models.ItemTypeText,
				Content:  "   ",
			},
			wantErr: true,
		},
		{
			name: "image url on a text item",
			fields: board.NewItem{
				PillarID: "career",
				Type:     models.ItemTypeText,
				Content:  "note",
				ImageURL: "https://example.com/pic.jpg",
			},
			wantErr: true,
		},
		{
			name: "malformed target date",
			fields: board.NewItem{
				PillarID:   "financial",
				Type:       models.ItemTypeGoal,
				Content:    "Emergency fund",
				TargetDate: "next spring",
			},
			wantErr: true,
		},
		{
			name: "well-formed target date",
			fields: board.NewItem{
				PillarID:   "financial",
				Type:       models.ItemTypeGoal,
				Content:    "Emergency fund",
				TargetDate: "2026-12-31",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewItem(tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNewItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateItemUpdate(t *testing.T) {
	valid := "career"
	invalid := "time-travel"
	empty := "  "
	content := "updated"
	badDate := "tomorrow"

	tests := []struct {
		name    string
		update  models.ItemUpdate
		wantErr bool
	}{
		{name: "empty update", update: models.ItemUpdate{}, wantErr: false},
		{name: "valid pillar move", update: models.ItemUpdate{PillarID: &valid}, wantErr: false},
		{name: "invalid pillar move", update: models.ItemUpdate{PillarID: &invalid}, wantErr: true},
		{name: "blank content", update: models.ItemUpdate{Content: &empty}, wantErr: true},
		{name: "new content", update: models.ItemUpdate{Content: &content}, wantErr: false},
		{name: "bad target date", update: models.ItemUpdate{TargetDate: &badDate}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemUpdate(tt.update)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateItemUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNewReflection(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		fields  journal.NewReflection
		wantErr bool
	}{
		{
			name:    "valid reflection",
			fields:  journal.NewReflection{Date: now, Gratitude: []string{"sunshine"}, Mood: 4},
			wantErr: false,
		},
		{
			name:    "wins only is enough",
			fields:  journal.NewReflection{Date: now, Wins: []string{"closed a ticket"}, Mood: 3},
			wantErr: false,
		},
		{
			name:    "mood too low",
			fields:  journal.NewReflection{Date: now, Gratitude: []string{"x"}, Mood: 0},
			wantErr: true,
		},
		{
			name:    "mood too high",
			fields:  journal.NewReflection{Date: now, Gratitude: []string{"x"}, Mood: 6},
			wantErr: true,
		},
		{
			name:    "all sections empty",
			fields:  journal.NewReflection{Date: now, Mood: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewReflection(tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNewReflection() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
