package models

import "time"

type ItemType string

const (
	ItemTypeText  ItemType = "text"
	ItemTypeImage ItemType = "image"
	ItemTypeQuote ItemType = "quote"
	ItemTypeGoal  ItemType = "goal"
)

// VisionItem is a single entry on the board: a note, goal, quote, or image
// reference attached to one life pillar.
type VisionItem struct {
	ID          string    `json:"id"`
	PillarID    string    `json:"pillar_id"`
	Type        ItemType  `json:"type"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url,omitempty"`    // only meaningful when Type == image
	IsCompleted bool      `json:"is_completed,omitempty"` // only meaningful when Type == goal
	Progress    int       `json:"progress,omitempty"`
	TargetDate  string    `json:"target_date,omitempty"` // YYYY-MM-DD format
	CreatedAt   time.Time `json:"created_at"`
}

// ItemUpdate carries a partial update for a vision item. Nil fields are
// left untouched; ID, Type, and CreatedAt are immutable after creation.
type ItemUpdate struct {
	PillarID    *string `json:"pillar_id,omitempty"`
	Content     *string `json:"content,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	TargetDate  *string `json:"target_date,omitempty"`
}
