package app

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chosenoffset.com/decker/internal/event"
)

// ErrItemNotFound is returned when a shop item name is unknown.
var ErrItemNotFound = errors.New("app: shop item not found")

// publishCollected publishes the aggregate's collected events and clears
// them. Called only after persistence succeeded.
func publishCollected(d *event.Dispatcher, c *Character) {
	d.Publish(c.Events()...)
	c.ClearEvents()
}

// CharacterStatus is the query DTO the home screen renders.
type CharacterStatus struct {
	Name    string
	Credits int
	Skills  []Skill
	Items   []string
	Project *Project
}

// CharacterService handles character lifecycle operations.
type CharacterService struct {
	repo            CharacterRepository
	dispatcher      *event.Dispatcher
	startingCredits int
}

// NewCharacterService creates the character service.
func NewCharacterService(repo CharacterRepository, d *event.Dispatcher, startingCredits int) *CharacterService {
	return &CharacterService{repo: repo, dispatcher: d, startingCredits: startingCredits}
}

// CreateCharacter creates and persists a new character, then publishes its
// CharacterCreated event. Returns the new character's id.
func (s *CharacterService) CreateCharacter(name string) (uuid.UUID, error) {
	c, err := NewCharacter(name, s.startingCredits)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.repo.Save(c); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save character: %w", err)
	}
	publishCollected(s.dispatcher, c)
	return c.ID, nil
}

// IncreaseSkill raises a character skill by one level.
func (s *CharacterService) IncreaseSkill(id uuid.UUID, skill string) error {
	c, err := s.repo.Get(id)
	if err != nil {
		return err
	}
	c.IncreaseSkill(skill)
	if err := s.repo.Save(c); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	publishCollected(s.dispatcher, c)
	return nil
}

// Status returns the character's current status for display.
func (s *CharacterService) Status(id uuid.UUID) (CharacterStatus, error) {
	c, err := s.repo.Get(id)
	if err != nil {
		return CharacterStatus{}, err
	}
	return CharacterStatus{
		Name:    c.Name,
		Credits: c.Credits,
		Skills:  c.Skills,
		Items:   c.Items,
		Project: c.Project,
	}, nil
}

// ShopItem is one entry of a shop catalog.
type ShopItem struct {
	Name        string
	Description string
	Price       int
}

// ShopService handles shop queries and purchases against a fixed catalog.
type ShopService struct {
	repo       CharacterRepository
	dispatcher *event.Dispatcher
	catalog    []ShopItem
}

// NewShopService creates the shop service.
func NewShopService(repo CharacterRepository, d *event.Dispatcher, catalog []ShopItem) *ShopService {
	return &ShopService{repo: repo, dispatcher: d, catalog: catalog}
}

// DefaultCatalog returns the stock shop inventory.
func DefaultCatalog() []ShopItem {
	return []ShopItem{
		{Name: "IcePick v1", Description: "Entry-level intrusion program.", Price: 250},
		{Name: "Shield v2", Description: "Defensive barrier program.", Price: 400},
		{Name: "Sift v1", Description: "File search utility.", Price: 150},
		{Name: "Hammer v3", Description: "Heavy attack program.", Price: 900},
	}
}

// Catalog returns the purchasable items.
func (s *ShopService) Catalog() []ShopItem {
	return s.catalog
}

// ItemDetails returns the catalog entry for a name.
func (s *ShopService) ItemDetails(name string) (ShopItem, error) {
	for _, item := range s.catalog {
		if item.Name == name {
			return item, nil
		}
	}
	return ShopItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, name)
}

// PurchaseItem buys an item for the character. On success the aggregate is
// saved and its ItemPurchased event published; on rejection nothing is
// persisted or published.
func (s *ShopService) PurchaseItem(charID uuid.UUID, itemName string) error {
	item, err := s.ItemDetails(itemName)
	if err != nil {
		return err
	}
	c, err := s.repo.Get(charID)
	if err != nil {
		return err
	}
	if err := c.Purchase(item.Name, item.Price); err != nil {
		return err
	}
	if err := s.repo.Save(c); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	publishCollected(s.dispatcher, c)
	return nil
}

// CraftingService handles crafting from known schematics.
type CraftingService struct {
	repo       CharacterRepository
	dispatcher *event.Dispatcher
}

// NewCraftingService creates the crafting service.
func NewCraftingService(repo CharacterRepository, d *event.Dispatcher) *CraftingService {
	return &CraftingService{repo: repo, dispatcher: d}
}

// Schematics returns the schematics the character knows.
func (s *CraftingService) Schematics(charID uuid.UUID) ([]Schematic, error) {
	c, err := s.repo.Get(charID)
	if err != nil {
		return nil, err
	}
	return c.Schematics, nil
}

// CraftItem crafts an item from a known schematic.
func (s *CraftingService) CraftItem(charID uuid.UUID, schematicName string) error {
	c, err := s.repo.Get(charID)
	if err != nil {
		return err
	}
	if err := c.Craft(schematicName); err != nil {
		return err
	}
	if err := s.repo.Save(c); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	publishCollected(s.dispatcher, c)
	return nil
}

// ProjectService handles multi-day research projects. Progress is persisted
// data advanced on explicit work ticks.
type ProjectService struct {
	repo       CharacterRepository
	dispatcher *event.Dispatcher
}

// NewProjectService creates the project service.
func NewProjectService(repo CharacterRepository, d *event.Dispatcher) *ProjectService {
	return &ProjectService{repo: repo, dispatcher: d}
}

// StartProject begins researching an item over the given number of days.
func (s *ProjectService) StartProject(charID uuid.UUID, itemName string, days int) error {
	c, err := s.repo.Get(charID)
	if err != nil {
		return err
	}
	if err := c.StartProject(itemName, days); err != nil {
		return err
	}
	if err := s.repo.Save(c); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	publishCollected(s.dispatcher, c)
	return nil
}

// WorkOnProject logs work days; when the project is done it is completed in
// the same operation.
func (s *ProjectService) WorkOnProject(charID uuid.UUID, days int) error {
	c, err := s.repo.Get(charID)
	if err != nil {
		return err
	}
	if err := c.WorkOnProject(days); err != nil {
		return err
	}
	if c.Project.Done() {
		if err := c.CompleteProject(); err != nil {
			return err
		}
	}
	if err := s.repo.Save(c); err != nil {
		return fmt.Errorf("failed to save character: %w", err)
	}
	publishCollected(s.dispatcher, c)
	return nil
}
