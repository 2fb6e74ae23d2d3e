package ui

import (
	"fmt"
	"image"

	"chosenoffset.com/decker/internal/render"
)

// ShopRow is one purchasable entry in the shop list.
type ShopRow struct {
	Name  string
	Price int
}

// ShopCallbacks are the actions available from the shop list.
type ShopCallbacks struct {
	OnPurchase    func(itemName string)
	OnViewDetails func(itemName string)
	OnClose       func()
}

// ShopView lists the shop inventory with per-item buy/info buttons.
type ShopView struct {
	renderer render.Renderer
	width    int
	height   int
	rows     []ShopRow
	buttons  []*Button
}

// NewShopView creates the shop view for the given inventory.
func NewShopView(r render.Renderer, width, height int, rows []ShopRow, cb ShopCallbacks) *ShopView {
	v := &ShopView{renderer: r, width: width, height: height, rows: rows}
	y := 110
	for _, row := range rows {
		name := row.Name
		v.buttons = append(v.buttons,
			&Button{
				Label:   "Buy",
				Rect:    image.Rect(420, y, 480, y+24),
				OnClick: func() { cb.OnPurchase(name) },
			},
			&Button{
				Label:   "Info",
				Rect:    image.Rect(490, y, 550, y+24),
				OnClick: func() { cb.OnViewDetails(name) },
			})
		y += 34
	}
	v.buttons = append(v.buttons, &Button{
		Label:   "Leave",
		Rect:    image.Rect(60, y+20, 160, y+52),
		OnClick: cb.OnClose,
	})
	return v
}

// HandleInput dispatches clicks to the row buttons, Escape to close.
func (v *ShopView) HandleInput(ev InputEvent) bool {
	if ev.Kind != InputClick {
		return false
	}
	for _, b := range v.buttons {
		if b.HandleClick(ev.X, ev.Y) {
			return true
		}
	}
	return false
}

// Update implements Surface.
func (v *ShopView) Update(dt float64) {}

// Draw renders the inventory list.
func (v *ShopView) Draw(dst render.Image) {
	dst.Fill(colorPanel)
	v.renderer.DrawText(dst, "Shop", 60, 60, colorHighlight, 1.5)
	y := 110
	for _, row := range v.rows {
		v.renderer.DrawText(dst, fmt.Sprintf("%-24s %6dcr", row.Name, row.Price), 60, y+6, colorText, 1.0)
		y += 34
	}
	for _, b := range v.buttons {
		b.Draw(v.renderer, dst)
	}
}

// ShopItemDetails is the data shown in the item detail dialog.
type ShopItemDetails struct {
	Name        string
	Description string
	Price       int
}

// ShopItemView is a modal dialog showing one item's details on top of the
// shop list.
type ShopItemView struct {
	renderer render.Renderer
	rect     image.Rectangle
	details  ShopItemDetails
	closeBtn *Button
}

// NewShopItemView creates the detail dialog for an item.
func NewShopItemView(r render.Renderer, screenW, screenH int, details ShopItemDetails, onClose func()) *ShopItemView {
	w, h := 360, 180
	rect := image.Rect((screenW-w)/2, (screenH-h)/2, (screenW+w)/2, (screenH+h)/2)
	return &ShopItemView{
		renderer: r,
		rect:     rect,
		details:  details,
		closeBtn: &Button{
			Label:   "Close",
			Rect:    image.Rect(rect.Min.X+20, rect.Max.Y-44, rect.Min.X+120, rect.Max.Y-12),
			OnClick: onClose,
		},
	}
}

// HandleInput consumes every click while the dialog is open; only the close
// button acts on it.
func (v *ShopItemView) HandleInput(ev InputEvent) bool {
	if ev.Kind != InputClick {
		return false
	}
	v.closeBtn.HandleClick(ev.X, ev.Y)
	return true
}

// Update implements Surface.
func (v *ShopItemView) Update(dt float64) {}

// Draw renders the dialog.
func (v *ShopItemView) Draw(dst render.Image) {
	x := float32(v.rect.Min.X)
	y := float32(v.rect.Min.Y)
	w := float32(v.rect.Dx())
	h := float32(v.rect.Dy())
	v.renderer.FillRect(dst, x, y, w, h, colorButton)
	v.renderer.StrokeRect(dst, x, y, w, h, 2, colorBorder)
	v.renderer.DrawText(dst, v.details.Name, v.rect.Min.X+20, v.rect.Min.Y+20, colorHighlight, 1.2)
	v.renderer.DrawText(dst, v.details.Description, v.rect.Min.X+20, v.rect.Min.Y+50, colorText, 1.0)
	v.renderer.DrawText(dst, fmt.Sprintf("%d credits", v.details.Price), v.rect.Min.X+20, v.rect.Min.Y+80, colorText, 1.0)
	v.closeBtn.Draw(v.renderer, dst)
}
