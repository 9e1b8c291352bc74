package board

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/visionboard/internal/constants"
	"github.com/julianstephens/visionboard/internal/logger"
	"github.com/julianstephens/visionboard/internal/models"
	"github.com/julianstephens/visionboard/internal/storage"
)

// slot is the persisted shape of the items collection: the full item list
// wrapped with a last-updated timestamp.
type slot struct {
	Items       []models.VisionItem `json:"items"`
	LastUpdated string              `json:"last_updated"`
}

// Store owns the authoritative in-memory copy of all vision items and keeps
// a persistent mirror in sync. Every mutation serializes the full collection
// back to the items slot. Not safe for concurrent use.
type Store struct {
	kv    storage.Provider
	now   func() time.Time
	newID func() string
	items []models.VisionItem
}

func NewStore(kv storage.Provider) *Store {
	return &Store{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load reads the persisted items slot into memory. An absent slot starts the
// collection empty. A malformed slot is logged and also starts empty; no
// partial repair is attempted.
func (s *Store) Load() error {
	data, found, err := s.kv.Get(constants.ItemsSlot)
	if err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	if !found {
		s.items = []models.VisionItem{}
		return nil
	}

	var stored slot
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warn("Discarding malformed items slot", "error", err)
		s.items = []models.VisionItem{}
		return nil
	}

	s.items = stored.Items
	if s.items == nil {
		s.items = []models.VisionItem{}
	}
	return nil
}

// NewItem carries the caller-supplied fields for item creation. ID and
// CreatedAt are assigned by the store.
type NewItem struct {
	PillarID   string
	Type       models.ItemType
	Content    string
	ImageURL   string
	Progress   int
	TargetDate string
}

// AddItem appends a new item to the board and persists the collection.
// Insertion order is preserved and used for display.
func (s *Store) AddItem(fields NewItem) (models.VisionItem, error) {
	item := models.VisionItem{
		ID:         s.newID(),
		PillarID:   fields.PillarID,
		Type:       fields.Type,
		Content:    fields.Content,
		ImageURL:   fields.ImageURL,
		Progress:   fields.Progress,
		TargetDate: fields.TargetDate,
		CreatedAt:  s.now(),
	}

	s.items = append(s.items, item)
	if err := s.save(); err != nil {
		return models.VisionItem{}, err
	}
	return item, nil
}

// UpdateItem merges the set fields of the update into the item matching id.
// An unknown id is a silent no-op.
func (s *Store) UpdateItem(id string, update models.ItemUpdate) error {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		item := &s.items[i]
		if update.PillarID != nil {
			item.PillarID = *update.PillarID
		}
		if update.Content != nil {
			item.Content = *update.Content
		}
		if update.ImageURL != nil {
			item.ImageURL = *update.ImageURL
		}
		if update.IsCompleted != nil {
			item.IsCompleted = *update.IsCompleted
		}
		if update.Progress != nil {
			item.Progress = *update.Progress
		}
		if update.TargetDate != nil {
			item.TargetDate = *update.TargetDate
		}
		return s.save()
	}
	return nil
}

// DeleteItem removes the item matching id. An unknown id is a silent no-op,
// which also makes deletion idempotent.
func (s *Store) DeleteItem(id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// GetItem returns the item matching id.
func (s *Store) GetItem(id string) (models.VisionItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.VisionItem{}, false
}

// Items returns the full collection in insertion order.
func (s *Store) Items() []models.VisionItem {
	out := make([]models.VisionItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemsByPillar returns the items belonging to the given pillar, in their
// original insertion order.
func (s *Store) ItemsByPillar(pillarID string) []models.VisionItem {
	var out []models.VisionItem
	for _, item := range s.items {
		if item.PillarID == pillarID {
			out = append(out, item)
		}
	}
	return out
}

// CompletedGoals counts goal items marked complete. Recomputed on each call.
func (s *Store) CompletedGoals() int {
	count := 0
	for _, item := range s.items {
		if item.Type == models.ItemTypeGoal && item.IsCompleted {
			count++
		}
	}
	return count
}

// TotalGoals counts all goal items. Recomputed on each call.
func (s *Store) TotalGoals() int {
	count := 0
	for _, item := range s.items {
		if item.Type == models.ItemTypeGoal {
			count++
		}
	}
	return count
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(slot{
		Items:       s.items,
		LastUpdated: s.now().UTC().Format(time.RFC3339),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize items: %w", err)
	}

	if err := s.kv.Set(constants.ItemsSlot, data); err != nil {
		return fmt.Errorf("failed to persist items: %w", err)
	}
	return nil
}
