package models

import "time"

// Reflection is a dated journal entry. Entries are append-only: there is no
// update or delete, and the newest entry is always first in the store.
type Reflection struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Gratitude    []string  `json:"gratitude"`
	Wins         []string  `json:"wins"`
	Improvements []string  `json:"improvements"`
	Mood         int       `json:"mood"` // 1-5
}
