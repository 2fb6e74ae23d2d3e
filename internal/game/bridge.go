package game

import (
	"fmt"
	"log"
	"strings"

	"chosenoffset.com/decker/internal/event"
)

// InstallBridge wires domain events to UI reactions. It is called once at
// startup; the subscriptions live for the process. Every handler is
// defensive: when the event's natural UI context is not active (the player
// navigated away before it fired), the handler no-ops.
func InstallBridge(d *event.Dispatcher, r *Runner) {
	d.Subscribe(event.TypeItemCrafted, func(e event.Event) {
		crafted := e.(event.ItemCrafted)
		r.ShowMessage(fmt.Sprintf("Crafted %s.", crafted.ItemName))
	})

	d.Subscribe(event.TypeItemPurchased, func(e event.Event) {
		purchased := e.(event.ItemPurchased)
		r.ShowMessage(fmt.Sprintf("Purchased %s for %d credits.", purchased.ItemName, purchased.Price))
	})

	d.Subscribe(event.TypeProjectCompleted, func(e event.Event) {
		completed := e.(event.ProjectCompleted)
		r.ShowMessage(fmt.Sprintf("Research complete: %s.", completed.ItemName))
	})

	d.Subscribe(event.TypeMatrixLogEntryCreated, func(e event.Event) {
		if r.Mode() != ModeMatrixRun {
			return
		}
		state, ok := r.current.(*MatrixRunState)
		if !ok || state.view == nil {
			return
		}
		entry := e.(event.MatrixLogEntryCreated)
		state.view.AppendLine(entry.Message)
	})

	d.Subscribe(event.TypeCharacterCreated, func(e event.Event) {
		created := e.(event.CharacterCreated)
		log.Printf("character created: %s (%s)", created.Name, created.CharacterID)
	})

	d.Subscribe(event.TypeCharacterCreated, func(e event.Event) {
		created := e.(event.CharacterCreated)
		r.ShowMessage(fmt.Sprintf("Welcome back, %s.", created.Name))
	}, event.When(func(e event.Event) bool {
		return strings.EqualFold(e.(event.CharacterCreated).Name, "Rynn")
	}))
}
