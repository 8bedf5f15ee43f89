package ui

import (
	"testing"

	"github.com/percept3d/streamview/pkg/filter"
)

// Every rendered button must resolve to its own visual style through
// Style, so the header renderer never has to pair geometry and style
// by slice position.
func TestStyle_MatchesButtonBindings(t *testing.T) {
	theme := DefaultTheme()
	header := Compute(1920, 1080).Header

	for _, b := range theme.Buttons(header) {
		style, ok := theme.Style(b.Sel)
		if !ok {
			t.Errorf("no style for button %v", b.Sel)
			continue
		}
		if style.Sel != b.Sel {
			t.Errorf("Style(%v) returned style for %v", b.Sel, style.Sel)
		}
		if style.Label == "" {
			t.Errorf("Style(%v) has empty label", b.Sel)
		}
	}
}

func TestStyle_NoneHasNoStyle(t *testing.T) {
	if _, ok := DefaultTheme().Style(filter.None); ok {
		t.Error("Style(None) returned a button style")
	}
}
