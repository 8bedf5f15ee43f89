// Package ui holds the screen layout, button geometry and hit testing
// for the viewer. Everything here is plain arithmetic over rectangles;
// rendering and input routing both consume the same geometry so a drawn
// button is always clickable.
package ui

import (
	"image"

	"github.com/percept3d/streamview/pkg/filter"
)

// Layout is the fixed partition of the canvas, computed once per
// session from the display resolution. Header and footer each take 10%
// of the height; the two stream panels split the remaining area evenly.
type Layout struct {
	Header    image.Rectangle
	Footer    image.Rectangle
	Original  image.Rectangle
	Processed image.Rectangle
}

// Compute derives the layout for a screen of the given size. The four
// rectangles partition the canvas exactly: integer remainders from the
// 10% bands go to the panels, and an odd width goes to the processed
// panel.
func Compute(screenW, screenH int) Layout {
	headerH := screenH / 10
	footerH := screenH / 10
	panelH := screenH - headerH - footerH
	panelW := screenW / 2

	return Layout{
		Header:    image.Rect(0, 0, screenW, headerH),
		Footer:    image.Rect(0, screenH-footerH, screenW, screenH),
		Original:  image.Rect(0, headerH, panelW, headerH+panelH),
		Processed: image.Rect(panelW, headerH, screenW, headerH+panelH),
	}
}

// Button binds one header button rectangle to the filter it selects.
type Button struct {
	Rect image.Rectangle
	Sel  filter.Selection
}

// Buttons computes the three filter buttons centered as a group inside
// the header rectangle. The same function backs both the renderer and
// the pointer router.
func (t Theme) Buttons(header image.Rectangle) [3]Button {
	selections := [3]filter.Selection{filter.Red, filter.Green, filter.Blue}

	total := 3*t.ButtonWidth + 2*t.ButtonMargin
	startX := header.Min.X + (header.Dx()-total)/2
	y := header.Min.Y + (header.Dy()-t.ButtonHeight)/2

	var out [3]Button
	for i, sel := range selections {
		x := startX + i*(t.ButtonWidth+t.ButtonMargin)
		out[i] = Button{
			Rect: image.Rect(x, y, x+t.ButtonWidth, y+t.ButtonHeight),
			Sel:  sel,
		}
	}
	return out
}

// HitTest maps a pointer-down position to the button it lands on.
// Events outside the header band never match.
func (t Theme) HitTest(header image.Rectangle, x, y int) (filter.Selection, bool) {
	p := image.Pt(x, y)
	if !p.In(header) {
		return filter.None, false
	}
	for _, b := range t.Buttons(header) {
		if p.In(b.Rect) {
			return b.Sel, true
		}
	}
	return filter.None, false
}
