package journal

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

// Store owns the append-only log of reflections, newest first. Reflections
// have no update or delete; every add serializes the full log back to the
// reflections slot. Not safe for concurrent use.
//
// The slot holds a bare JSON array, unlike the wrapped items slot. The
// asymmetry is deliberate: it matches the original persisted layout.
type Store struct {
	kv          storage.Provider
	now         func() time.Time
	newID       func() string
	reflections []models.Reflection
}

func NewStore(kv storage.Provider) *Store {
	return &Store{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load reads the persisted reflections slot into memory. Absent or malformed
// slots start the log empty; malformed data is logged and discarded.
func (s *Store) Load() error {
	data, found, err := s.kv.Get(constants.ReflectionsSlot)
	if err != nil {
		return fmt.Errorf("failed to load reflections: %w", err)
	}
	if !found {
		s.reflections = []models.Reflection{}
		return nil
	}

	var stored []models.Reflection
	if err := json.Unmarshal(data, &stored); err != nil {
		logger.Warn("Discarding malformed reflections slot", "error", err)
		s.reflections = []models.Reflection{}
		return nil
	}

	s.reflections = stored
	if s.reflections == nil {
		s.reflections = []models.Reflection{}
	}
	return nil
}

// NewReflection carries the caller-supplied fields for a reflection. The
// line sequences are already split and blank-filtered by the caller.
type NewReflection struct {
	Date         time.Time
	Gratitude    []string
	Wins         []string
	Improvements []string
	Mood         int
}

// AddReflection prepends a new reflection so index 0 is always the most
// recent by insertion, then persists the log.
func (s *Store) AddReflection(fields NewReflection) (models.Reflection, error) {
	reflection := models.Reflection{
		ID:           s.newID(),
		Date:         fields.Date,
		Gratitude:    fields.Gratitude,
		Wins:         fields.Wins,
		Improvements: fields.Improvements,
		Mood:         fields.Mood,
	}

	s.reflections = append([]models.Reflection{reflection}, s.reflections...)
	if err := s.save(); err != nil {
		return models.Reflection{}, err
	}
	return reflection, nil
}

// Reflections returns the log, most recent first by insertion order.
func (s *Store) Reflections() []models.Reflection {
	out := make([]models.Reflection, len(s.reflections))
	copy(out, s.reflections)
	return out
}

// Count returns the number of recorded reflections.
func (s *Store) Count() int {
	return len(s.reflections)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.reflections, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize reflections: %w", err)
	}

	if err := s.kv.Set(constants.ReflectionsSlot, data); err != nil {
		return fmt.Errorf("failed to persist reflections: %w", err)
	}
	return nil
}
