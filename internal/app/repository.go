package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrCharacterNotFound is returned when no character exists for an id.
var ErrCharacterNotFound = errors.New("app: character not found")

// CharacterRepository loads and saves character aggregates by id.
type CharacterRepository interface {
	Get(id uuid.UUID) (*Character, error)
	Save(c *Character) error
}

// MemoryCharacterRepository keeps characters in memory. Used in tests and as
// the fallback when no save path is configured.
type MemoryCharacterRepository struct {
	chars map[uuid.UUID]*Character
}

// NewMemoryCharacterRepository creates an empty in-memory repository.
func NewMemoryCharacterRepository() *MemoryCharacterRepository {
	return &MemoryCharacterRepository{chars: make(map[uuid.UUID]*Character)}
}

// Get returns the character with the given id.
func (r *MemoryCharacterRepository) Get(id uuid.UUID) (*Character, error) {
	c, ok := r.chars[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
	}
	return c, nil
}

// Save stores the character.
func (r *MemoryCharacterRepository) Save(c *Character) error {
	r.chars[c.ID] = c
	return nil
}

// JSONCharacterRepository persists characters as a JSON file, one file per
// save slot directory.
type JSONCharacterRepository struct {
	dir   string
	chars map[uuid.UUID]*Character
}

// NewJSONCharacterRepository opens (or creates) the save directory and loads
// any existing characters.
func NewJSONCharacterRepository(dir string) (*JSONCharacterRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	r := &JSONCharacterRepository{dir: dir, chars: make(map[uuid.UUID]*Character)}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read save file %s: %w", entry.Name(), err)
		}
		var c Character
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse save file %s: %w", entry.Name(), err)
		}
		r.chars[c.ID] = &c
	}
	return r, nil
}

// Get returns the character with the given id.
func (r *JSONCharacterRepository) Get(id uuid.UUID) (*Character, error) {
	c, ok := r.chars[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
	}
	return c, nil
}

// Save writes the character to its save file. Pending domain events are not
// persisted; they belong to the current transaction only.
func (r *JSONCharacterRepository) Save(c *Character) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode character: %w", err)
	}
	path := filepath.Join(r.dir, c.ID.String()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	r.chars[c.ID] = c
	return nil
}
