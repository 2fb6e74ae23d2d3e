package game

import (
	"fmt"
	"log"

	"chosenoffset.com/decker/internal/render"
	"chosenoffset.com/decker/internal/ui"
)

// RegisterStates installs the factories for every application mode.
func RegisterStates(r *Runner) {
	r.Register(ModeIntro, NewIntroState)
	r.Register(ModeNewChar, NewNewCharState)
	r.Register(ModeHome, NewHomeState)
	r.Register(ModeShop, NewShopState)
	r.Register(ModeMatrixRun, NewMatrixRunState)
	r.Register(ModeQuit, NewQuitState)
}

// IntroState shows the title screen until the player continues.
type IntroState struct {
	runner  *Runner
	view    *ui.IntroView
	entered bool
}

// NewIntroState creates the intro state.
func NewIntroState(r *Runner) State {
	return &IntroState{runner: r}
}

// OnEnter shows the intro view.
func (s *IntroState) OnEnter() {
	if s.entered {
		return
	}
	s.entered = true
	s.view = ui.NewIntroView(s.runner.renderer, s.runner.screenWidth, s.runner.screenHeight, func() {
		if err := s.runner.Transition(ModeNewChar); err != nil {
			log.Printf("game: intro transition failed: %v", err)
		}
	})
	s.runner.views.Show(s.view)
}

// OnExit hides the intro view.
func (s *IntroState) OnExit() {
	if err := s.runner.views.Hide(s.view); err != nil {
		log.Printf("game: failed to hide intro view: %v", err)
	}
}

// HandleInput implements State. The view consumes everything relevant.
func (s *IntroState) HandleInput(ev ui.InputEvent) {}

// Update ticks the shown surfaces.
func (s *IntroState) Update(dt float64) {
	s.runner.views.Update(dt)
}

// Draw renders the shown surfaces.
func (s *IntroState) Draw(dst render.Image) {
	s.runner.views.Draw(dst)
}

// NewCharState is character creation: a name prompt that creates the
// character through the character service.
type NewCharState struct {
	runner  *Runner
	view    *ui.NewCharView
	entered bool
}

// NewNewCharState creates the character creation state.
func NewNewCharState(r *Runner) State {
	return &NewCharState{runner: r}
}

// OnEnter shows the name prompt.
func (s *NewCharState) OnEnter() {
	if s.entered {
		return
	}
	s.entered = true
	s.view = ui.NewNewCharView(s.runner.renderer, s.runner.screenWidth, s.runner.screenHeight, s.onCreate)
	s.runner.views.Show(s.view)
}

func (s *NewCharState) onCreate(name string) {
	id, err := s.runner.services.Character.CreateCharacter(name)
	if err != nil {
		// Rejection: surface a message and stay in this state.
		s.runner.ShowMessage(fmt.Sprintf("Error: %v", err))
		return
	}
	s.runner.SetCharacterID(id)
	if err := s.runner.Transition(ModeHome); err != nil {
		log.Printf("game: transition to home failed: %v", err)
	}
}

// OnExit hides the name prompt.
func (s *NewCharState) OnExit() {
	if err := s.runner.views.Hide(s.view); err != nil {
		log.Printf("game: failed to hide new char view: %v", err)
	}
}

// HandleInput implements State.
func (s *NewCharState) HandleInput(ev ui.InputEvent) {}

// Update ticks the shown surfaces.
func (s *NewCharState) Update(dt float64) {
	s.runner.views.Update(dt)
}

// Draw renders the shown surfaces.
func (s *NewCharState) Draw(dst render.Image) {
	s.runner.views.Draw(dst)
}

// HomeState is the hub between runs.
type HomeState struct {
	runner  *Runner
	view    *ui.HomeView
	entered bool
}

// NewHomeState creates the home state.
func NewHomeState(r *Runner) State {
	return &HomeState{runner: r}
}

// OnEnter shows the hub with current character status.
func (s *HomeState) OnEnter() {
	if s.entered {
		return
	}
	s.entered = true
	s.view = ui.NewHomeView(s.runner.renderer, s.runner.screenWidth, s.runner.screenHeight, ui.HomeCallbacks{
		OnShop:      func() { s.transition(ModeShop) },
		OnMatrixRun: func() { s.transition(ModeMatrixRun) },
		OnResearch:  s.onResearch,
		OnQuit:      func() { s.transition(ModeQuit) },
	})
	s.refreshStatus()
	s.runner.views.Show(s.view)
}

func (s *HomeState) transition(next Mode) {
	if err := s.runner.Transition(next); err != nil {
		log.Printf("game: transition to %s failed: %v", next, err)
	}
}

func (s *HomeState) onResearch() {
	charID := s.runner.CharacterID()
	status, err := s.runner.services.Character.Status(charID)
	if err != nil {
		s.runner.ShowMessage(fmt.Sprintf("Error: %v", err))
		return
	}
	if status.Project == nil {
		if err := s.runner.services.Project.StartProject(charID, "Sift v2", 3); err != nil {
			s.runner.ShowMessage(fmt.Sprintf("Error: %v", err))
			return
		}
		s.runner.ShowMessage("Research started: Sift v2.")
	} else {
		if err := s.runner.services.Project.WorkOnProject(charID, 1); err != nil {
			s.runner.ShowMessage(fmt.Sprintf("Error: %v", err))
			return
		}
		s.runner.ShowMessage("One day of work completed.")
	}
	s.refreshStatus()
}

func (s *HomeState) refreshStatus() {
	status, err := s.runner.services.Character.Status(s.runner.CharacterID())
	if err != nil {
		s.view.SetStatus([]string{"status unavailable"})
		return
	}
	lines := []string{
		status.Name,
		fmt.Sprintf("%d credits", status.Credits),
		fmt.Sprintf("%d item(s)", len(status.Items)),
	}
	if status.Project != nil {
		lines = append(lines, fmt.Sprintf("research: %s (%d/%d days)",
			status.Project.ItemName, status.Project.DaysWorked, status.Project.DaysRequired))
	}
	s.view.SetStatus(lines)
}

// OnExit hides the hub.
func (s *HomeState) OnExit() {
	if err := s.runner.views.Hide(s.view); err != nil {
		log.Printf("game: failed to hide home view: %v", err)
	}
}

// HandleInput quits on Escape.
func (s *HomeState) HandleInput(ev ui.InputEvent) {
	if ev.Kind == ui.InputKey && ev.Key == render.KeyEscape {
		s.transition(ModeQuit)
	}
}

// Update ticks the shown surfaces.
func (s *HomeState) Update(dt float64) {
	s.runner.views.Update(dt)
}

// Draw renders the shown surfaces.
func (s *HomeState) Draw(dst render.Image) {
	s.runner.views.Draw(dst)
}

// ShopState is the shop screen. Item details open as a nested modal; a
// successful purchase refreshes the screen by re-entering the state.
type ShopState struct {
	runner   *Runner
	view     *ui.ShopView
	itemView *ui.ShopItemView
	entered  bool
}

// NewShopState creates the shop state.
func NewShopState(r *Runner) State {
	return &ShopState{runner: r}
}

// Reenterable opts the shop into self-transitions for refresh semantics.
func (s *ShopState) Reenterable() bool { return true }

// OnEnter shows the shop inventory.
func (s *ShopState) OnEnter() {
	if s.entered {
		return
	}
	s.entered = true
	catalog := s.runner.services.Shop.Catalog()
	rows := make([]ui.ShopRow, len(catalog))
	for i, item := range catalog {
		rows[i] = ui.ShopRow{Name: item.Name, Price: item.Price}
	}
	s.view = ui.NewShopView(s.runner.renderer, s.runner.screenWidth, s.runner.screenHeight, rows, ui.ShopCallbacks{
		OnPurchase:    s.onPurchase,
		OnViewDetails: s.onViewDetails,
		OnClose:       func() { s.transition(ModeHome) },
	})
	s.runner.views.Show(s.view)
}

func (s *ShopState) transition(next Mode) {
	if err := s.runner.Transition(next); err != nil {
		log.Printf("game: transition to %s failed: %v", next, err)
	}
}

func (s *ShopState) onPurchase(itemName string) {
	if err := s.runner.services.Shop.PurchaseItem(s.runner.CharacterID(), itemName); err != nil {
		s.runner.ShowMessage(fmt.Sprintf("Error: %v", err))
		return
	}
	// Refresh by re-entering the state. The purchase confirmation itself
	// arrives through the ItemPurchased bridge handler.
	s.transition(ModeShop)
}

func (s *ShopState) onViewDetails(itemName string) {
	item, err := s.runner.services.Shop.ItemDetails(itemName)
	if err != nil {
		s.runner.ShowMessage(fmt.Sprintf("Error: %v", err))
		return
	}
	details := ui.ShopItemDetails{Name: item.Name, Description: item.Description, Price: item.Price}
	view := ui.NewShopItemView(s.runner.renderer, s.runner.screenWidth, s.runner.screenHeight, details, s.closeItemView)
	if err := s.runner.views.PushModal(view); err != nil {
		log.Printf("game: failed to open item details: %v", err)
		return
	}
	s.itemView = view
}

func (s *ShopState) closeItemView() {
	if s.itemView == nil {
		return
	}
	if err := s.runner.views.PopModalSurface(s.itemView); err != nil {
		log.Printf("game: failed to close item details: %v", err)
		return
	}
	s.itemView = nil
}

// OnExit closes the detail modal if open, then hides the shop.
func (s *ShopState) OnExit() {
	s.closeItemView()
	if err := s.runner.views.Hide(s.view); err != nil {
		log.Printf("game: failed to hide shop view: %v", err)
	}
}

// HandleInput leaves the shop on Escape.
func (s *ShopState) HandleInput(ev ui.InputEvent) {
	if ev.Kind == ui.InputKey && ev.Key == render.KeyEscape {
		s.transition(ModeHome)
	}
}

// Update ticks the shown surfaces.
func (s *ShopState) Update(dt float64) {
	s.runner.views.Update(dt)
}

// Draw renders the shown surfaces.
func (s *ShopState) Draw(dst render.Image) {
	s.runner.views.Draw(dst)
}

// MatrixRunState is an active run. Run log lines arrive through the event
// bridge while this state is active.
type MatrixRunState struct {
	runner  *Runner
	view    *ui.MatrixRunView
	entered bool
}

// NewMatrixRunState creates the matrix run state.
func NewMatrixRunState(r *Runner) State {
	return &MatrixRunState{runner: r}
}

// OnEnter shows the run view.
func (s *MatrixRunState) OnEnter() {
	if s.entered {
		return
	}
	s.entered = true
	s.view = ui.NewMatrixRunView(s.runner.renderer, s.runner.screenWidth, s.runner.screenHeight)
	s.view.AppendLine("Connection established.")
	s.runner.views.Show(s.view)
}

// OnExit hides the run view.
func (s *MatrixRunState) OnExit() {
	if err := s.runner.views.Hide(s.view); err != nil {
		log.Printf("game: failed to hide matrix run view: %v", err)
	}
}

// HandleInput jacks out on Escape.
func (s *MatrixRunState) HandleInput(ev ui.InputEvent) {
	if ev.Kind == ui.InputKey && ev.Key == render.KeyEscape {
		if err := s.runner.Transition(ModeHome); err != nil {
			log.Printf("game: transition to home failed: %v", err)
		}
	}
}

// Update ticks the shown surfaces.
func (s *MatrixRunState) Update(dt float64) {
	s.runner.views.Update(dt)
}

// Draw renders the shown surfaces.
func (s *MatrixRunState) Draw(dst render.Image) {
	s.runner.views.Draw(dst)
}

// QuitState is the terminal mode: entering it stops the main loop after the
// current frame's draw completes.
type QuitState struct {
	runner *Runner
}

// NewQuitState creates the quit state.
func NewQuitState(r *Runner) State {
	return &QuitState{runner: r}
}

// OnEnter flags the runner to stop.
func (s *QuitState) OnEnter() {
	s.runner.Stop()
}

// OnExit implements State. Nothing to release.
func (s *QuitState) OnExit() {}

// HandleInput implements State.
func (s *QuitState) HandleInput(ev ui.InputEvent) {}

// Update implements State.
func (s *QuitState) Update(dt float64) {}

// Draw implements State.
func (s *QuitState) Draw(dst render.Image) {}
