package main

import (
	"log"

	"chosenoffset.com/decker/internal/app"
	"chosenoffset.com/decker/internal/config"
	"chosenoffset.com/decker/internal/event"
	"chosenoffset.com/decker/internal/game"
	ebitenrender "chosenoffset.com/decker/internal/render/ebiten"
	"chosenoffset.com/decker/internal/ui"
)

func main() {
	cfg, err := config.Load("decker.toml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Persistence and business services
	repo, err := app.NewJSONCharacterRepository(cfg.Game.SaveDir)
	if err != nil {
		log.Fatalf("Failed to open save directory: %v", err)
	}
	dispatcher := event.NewDispatcher()
	services := game.Services{
		Character: app.NewCharacterService(repo, dispatcher, cfg.Game.StartingCredits),
		Shop:      app.NewShopService(repo, dispatcher, app.DefaultCatalog()),
		Crafting:  app.NewCraftingService(repo, dispatcher),
		Project:   app.NewProjectService(repo, dispatcher),
	}

	// Presentation core
	views := ui.NewViewManager()
	runner := game.NewRunner(renderer, inputMgr, views, services, cfg.Window.Width, cfg.Window.Height)
	game.RegisterStates(runner)
	game.InstallBridge(dispatcher, runner)

	if err := runner.Transition(game.ModeIntro); err != nil {
		log.Fatalf("Failed to enter intro: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting game...")
	if err := engine.RunGame(runner); err != nil {
		log.Fatal(err)
	}
}
