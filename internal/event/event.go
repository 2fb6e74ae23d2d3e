// Package event defines the domain events of the game and the dispatcher
// that fans them out to subscribers. Events are immutable records of facts
// that already happened; they are collected by aggregates during a state
// change and published after the change has been persisted.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies the type of a domain event.
type Type string

// Character events.
const (
	// TypeCharacterCreated records the creation of a new character.
	TypeCharacterCreated Type = "character.created"
	// TypeSkillIncreased records a character skill level increase.
	TypeSkillIncreased Type = "character.skill_increased"
)

// Commerce and crafting events.
const (
	// TypeItemPurchased records a successful shop purchase.
	TypeItemPurchased Type = "shop.item_purchased"
	// TypeItemCrafted records an item crafted from a schematic.
	TypeItemCrafted Type = "crafting.item_crafted"
	// TypeProjectCompleted records a finished research project.
	TypeProjectCompleted Type = "project.completed"
)

// Matrix run events.
const (
	// TypeMatrixLogEntryCreated records a line to display in the matrix
	// run log.
	TypeMatrixLogEntryCreated Type = "matrix.log_entry_created"
)

// Event is the interface all domain events satisfy.
type Event interface {
	EventType() Type
	EventID() uuid.UUID
	OccurredAt() time.Time
}

// Base carries the identity fields common to all events. Embed it in a
// concrete event and initialize it with NewBase.
type Base struct {
	ID   uuid.UUID
	Time time.Time
}

// NewBase returns a Base with a fresh id and the current UTC time.
func NewBase() Base {
	return Base{ID: uuid.New(), Time: time.Now().UTC()}
}

// EventID returns the unique identifier of the event.
func (b Base) EventID() uuid.UUID { return b.ID }

// OccurredAt returns the UTC timestamp when the event was created.
func (b Base) OccurredAt() time.Time { return b.Time }

// CharacterCreated is fired when a new character is created.
type CharacterCreated struct {
	Base
	CharacterID uuid.UUID
	Name        string
}

// EventType implements Event.
func (CharacterCreated) EventType() Type { return TypeCharacterCreated }

// SkillIncreased is fired when a character's skill is increased.
type SkillIncreased struct {
	Base
	CharacterID uuid.UUID
	Skill       string
	NewLevel    int
}

// EventType implements Event.
func (SkillIncreased) EventType() Type { return TypeSkillIncreased }

// ItemPurchased is fired when a character buys an item from a shop.
type ItemPurchased struct {
	Base
	CharacterID uuid.UUID
	ItemName    string
	Price       int
}

// EventType implements Event.
func (ItemPurchased) EventType() Type { return TypeItemPurchased }

// ItemCrafted is fired when a character successfully crafts an item.
type ItemCrafted struct {
	Base
	CharacterID   uuid.UUID
	SchematicName string
	ItemName      string
}

// EventType implements Event.
func (ItemCrafted) EventType() Type { return TypeItemCrafted }

// ProjectCompleted is fired when a research project finishes.
type ProjectCompleted struct {
	Base
	CharacterID uuid.UUID
	ItemName    string
}

// EventType implements Event.
func (ProjectCompleted) EventType() Type { return TypeProjectCompleted }

// MatrixLogEntryCreated is fired when a new log entry should be displayed
// in the matrix run view.
type MatrixLogEntryCreated struct {
	Base
	Message string
}

// EventType implements Event.
func (MatrixLogEntryCreated) EventType() Type { return TypeMatrixLogEntryCreated }
