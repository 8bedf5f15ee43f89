package ui

import (
	"image/color"

	"github.com/percept3d/streamview/pkg/filter"
)

// ButtonStyle is the visual identity of one filter button.
type ButtonStyle struct {
	Sel   filter.Selection
	Label string
	Fill  color.RGBA
	Icon  color.RGBA
}

// Theme holds the visual constants of the viewer. Values are plain RGB;
// the renderer handles any channel-order conversion.
type Theme struct {
	Label string // product label painted in the header

	Background color.RGBA
	FooterFill color.RGBA
	HeaderText color.RGBA
	ButtonText color.RGBA

	ButtonWidth  int
	ButtonHeight int
	ButtonMargin int
	CornerRadius int
	IconRadius   int

	// BlendWeight is the overlay opacity for unselected buttons; the
	// selected button is drawn fully opaque and brightened.
	BlendWeight   float64
	SelectedBoost uint8

	Buttons3 [3]ButtonStyle
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		Label: "Percept3D",

		Background: color.RGBA{40, 40, 40, 0},
		FooterFill: color.RGBA{40, 34, 30, 0},
		HeaderText: color.RGBA{220, 220, 220, 0},
		ButtonText: color.RGBA{240, 240, 240, 0},

		ButtonWidth:  200,
		ButtonHeight: 50,
		ButtonMargin: 30,
		CornerRadius: 18,
		IconRadius:   16,

		BlendWeight:   0.92,
		SelectedBoost: 60,

		Buttons3: [3]ButtonStyle{
			{Sel: filter.Red, Label: "Red", Fill: color.RGBA{220, 60, 60, 0}, Icon: color.RGBA{255, 36, 36, 0}},
			{Sel: filter.Green, Label: "Green", Fill: color.RGBA{60, 220, 60, 0}, Icon: color.RGBA{36, 255, 36, 0}},
			{Sel: filter.Blue, Label: "Blue", Fill: color.RGBA{60, 60, 220, 0}, Icon: color.RGBA{36, 36, 255, 0}},
		},
	}
}

// Brighten lifts each channel by the selected-button boost, saturating
// at the channel maximum.
func (t Theme) Brighten(c color.RGBA) color.RGBA {
	add := func(v uint8) uint8 {
		if int(v)+int(t.SelectedBoost) > 255 {
			return 255
		}
		return v + t.SelectedBoost
	}
	return color.RGBA{add(c.R), add(c.G), add(c.B), c.A}
}

// Style returns the visual identity for a selection, or false for None.
func (t Theme) Style(sel filter.Selection) (ButtonStyle, bool) {
	for _, s := range t.Buttons3 {
		if s.Sel == sel {
			return s, true
		}
	}
	return ButtonStyle{}, false
}
