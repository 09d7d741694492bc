// Package savegame persists the player's location between sessions.
package savegame

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const saveObject = "savegame"

// ErrNoSave is returned by Load when the slot has never been written.
var ErrNoSave = errors.New("no save in slot")

// SaveGame is the persisted record.
type SaveGame struct {
	ID             string     `yaml:"id"`
	PlayerLocation [3]float32 `yaml:"playerLocation"`
	Health         float32    `yaml:"health"`
}

// Store reads and writes SaveGame records for one slot. A Store with a nil
// manager keeps the last save in memory only.
type Store struct {
	manager *gdata.Manager
	slot    string
	memory  *SaveGame
}

// Open creates the gdata manager for appName. If the platform storage cannot
// be opened the Store falls back to memory and the error is only logged.
func Open(appName, slot string) *Store {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("SaveGame: storage unavailable (%v), saves will not persist", err)
		manager = nil
	}
	return NewStore(manager, slot)
}

func NewStore(manager *gdata.Manager, slot string) *Store {
	return &Store{manager: manager, slot: slot}
}

// Persistent reports whether saves survive the process.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Save writes a new record stamped with a fresh ID and returns it.
func (s *Store) Save(location [3]float32, health float32) (SaveGame, error) {
	save := SaveGame{
		ID:             uuid.NewString(),
		PlayerLocation: location,
		Health:         health,
	}

	if s.manager == nil {
		s.memory = &save
		return save, nil
	}

	data, err := yaml.Marshal(save)
	if err != nil {
		return SaveGame{}, fmt.Errorf("marshal save: %w", err)
	}
	if err := s.manager.SaveObjectProp(saveObject, s.slot, data); err != nil {
		return SaveGame{}, fmt.Errorf("write save: %w", err)
	}

	log.Printf("SaveGame: saved %s to %s", save.ID, s.slot)
	return save, nil
}

// Load returns the slot's record, or ErrNoSave.
func (s *Store) Load() (SaveGame, error) {
	if s.manager == nil {
		if s.memory == nil {
			return SaveGame{}, ErrNoSave
		}
		return *s.memory, nil
	}

	if !s.manager.ObjectPropExists(saveObject, s.slot) {
		return SaveGame{}, ErrNoSave
	}

	data, err := s.manager.LoadObjectProp(saveObject, s.slot)
	if err != nil {
		return SaveGame{}, fmt.Errorf("read save: %w", err)
	}

	var save SaveGame
	if err := yaml.Unmarshal(data, &save); err != nil {
		return SaveGame{}, fmt.Errorf("unmarshal save: %w", err)
	}
	return save, nil
}
