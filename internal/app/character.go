// Package app holds the business core: the character aggregate, its
// repositories, and the application services the presentation layer calls.
// Services return plain data or a typed rejection error; successful state
// changes are persisted first, then their collected domain events are
// published.
package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chosenoffset.com/decker/internal/event"
)

// Business rule rejections. The presentation layer surfaces these as user
// messages, never as crashes.
var (
	ErrInsufficientCredits = errors.New("app: insufficient credits")
	ErrSchematicNotFound   = errors.New("app: schematic not known")
	ErrProjectActive       = errors.New("app: a research project is already active")
	ErrNoActiveProject     = errors.New("app: no research project is active")
	ErrProjectIncomplete   = errors.New("app: research project is not finished")
	ErrEmptyName           = errors.New("app: character name must not be empty")
)

// Skill is a named character skill with a level.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Schematic is a known crafting recipe.
type Schematic struct {
	Name     string `json:"name"`
	ItemName string `json:"item_name"`
	Cost     int    `json:"cost"`
}

// Project is a multi-day research effort. Progress is persisted data
// advanced on discrete work ticks, not a suspended computation.
type Project struct {
	ItemName     string `json:"item_name"`
	DaysRequired int    `json:"days_required"`
	DaysWorked   int    `json:"days_worked"`
}

// Done reports whether enough work days have been logged.
func (p *Project) Done() bool {
	return p.DaysWorked >= p.DaysRequired
}

// Character is the player aggregate. Mutating methods append domain events
// as a side effect of a successful change; callers persist the aggregate and
// then publish the collected events.
type Character struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	Credits    int         `json:"credits"`
	Skills     []Skill     `json:"skills"`
	Schematics []Schematic `json:"schematics"`
	Project    *Project    `json:"project,omitempty"`
	Items      []string    `json:"items"`

	pending []event.Event
}

// NewCharacter creates a character and records a CharacterCreated event.
func NewCharacter(name string, credits int) (*Character, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	c := &Character{
		ID:      uuid.New(),
		Name:    name,
		Credits: credits,
	}
	c.record(event.CharacterCreated{Base: event.NewBase(), CharacterID: c.ID, Name: name})
	return c, nil
}

// Events returns the domain events collected since the last ClearEvents.
func (c *Character) Events() []event.Event {
	return c.pending
}

// ClearEvents drops the collected events, after they have been published.
func (c *Character) ClearEvents() {
	c.pending = nil
}

func (c *Character) record(e event.Event) {
	c.pending = append(c.pending, e)
}

// Purchase deducts the item price and adds the item to the inventory.
func (c *Character) Purchase(itemName string, price int) error {
	if c.Credits < price {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCredits, itemName, price, c.Credits)
	}
	c.Credits -= price
	c.Items = append(c.Items, itemName)
	c.record(event.ItemPurchased{Base: event.NewBase(), CharacterID: c.ID, ItemName: itemName, Price: price})
	return nil
}

// Craft builds an item from a known schematic, spending its resource cost.
func (c *Character) Craft(schematicName string) error {
	var schematic *Schematic
	for i := range c.Schematics {
		if c.Schematics[i].Name == schematicName {
			schematic = &c.Schematics[i]
			break
		}
	}
	if schematic == nil {
		return fmt.Errorf("%w: %s", ErrSchematicNotFound, schematicName)
	}
	if c.Credits < schematic.Cost {
		return fmt.Errorf("%w: crafting %s costs %d, have %d", ErrInsufficientCredits, schematic.Name, schematic.Cost, c.Credits)
	}
	c.Credits -= schematic.Cost
	c.Items = append(c.Items, schematic.ItemName)
	c.record(event.ItemCrafted{
		Base:          event.NewBase(),
		CharacterID:   c.ID,
		SchematicName: schematic.Name,
		ItemName:      schematic.ItemName,
	})
	return nil
}

// IncreaseSkill raises a skill by one level, creating it at level 1 when
// unknown.
func (c *Character) IncreaseSkill(name string) {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			c.Skills[i].Level++
			c.record(event.SkillIncreased{Base: event.NewBase(), CharacterID: c.ID, Skill: name, NewLevel: c.Skills[i].Level})
			return
		}
	}
	c.Skills = append(c.Skills, Skill{Name: name, Level: 1})
	c.record(event.SkillIncreased{Base: event.NewBase(), CharacterID: c.ID, Skill: name, NewLevel: 1})
}

// StartProject begins a new research project.
func (c *Character) StartProject(itemName string, days int) error {
	if c.Project != nil {
		return ErrProjectActive
	}
	c.Project = &Project{ItemName: itemName, DaysRequired: days}
	return nil
}

// WorkOnProject logs work days against the active project.
func (c *Character) WorkOnProject(days int) error {
	if c.Project == nil {
		return ErrNoActiveProject
	}
	c.Project.DaysWorked += days
	return nil
}

// CompleteProject finishes a done project, yielding its item and a
// ProjectCompleted event.
func (c *Character) CompleteProject() error {
	if c.Project == nil {
		return ErrNoActiveProject
	}
	if !c.Project.Done() {
		return fmt.Errorf("%w: %d/%d days", ErrProjectIncomplete, c.Project.DaysWorked, c.Project.DaysRequired)
	}
	itemName := c.Project.ItemName
	c.Items = append(c.Items, itemName)
	c.Project = nil
	c.record(event.ProjectCompleted{Base: event.NewBase(), CharacterID: c.ID, ItemName: itemName})
	return nil
}
