package ui

import (
	"image"
	"testing"

	"github.com/percept3d/streamview/pkg/filter"
)

func TestCompute_PartitionsCanvas(t *testing.T) {
	sizes := []struct {
		w, h int
	}{
		{1920, 1080},
		{1366, 768},
		{2560, 1440},
		{1279, 719}, // odd dimensions
	}

	for _, s := range sizes {
		l := Compute(s.w, s.h)

		if got := l.Header.Dy() + l.Original.Dy() + l.Footer.Dy(); got != s.h {
			t.Errorf("%dx%d: header+panel+footer height = %d, want %d", s.w, s.h, got, s.h)
		}
		if got := l.Original.Dx() + l.Processed.Dx(); got != s.w {
			t.Errorf("%dx%d: panel widths sum to %d, want %d", s.w, s.h, got, s.w)
		}
		if l.Header.Dx() != s.w || l.Footer.Dx() != s.w {
			t.Errorf("%dx%d: header/footer do not span full width", s.w, s.h)
		}

		// No overlaps
		if l.Header.Overlaps(l.Original) || l.Header.Overlaps(l.Processed) || l.Header.Overlaps(l.Footer) {
			t.Errorf("%dx%d: header overlaps another region", s.w, s.h)
		}
		if l.Footer.Overlaps(l.Original) || l.Footer.Overlaps(l.Processed) {
			t.Errorf("%dx%d: footer overlaps a panel", s.w, s.h)
		}
		if l.Original.Overlaps(l.Processed) {
			t.Errorf("%dx%d: panels overlap", s.w, s.h)
		}

		// Full extent
		canvas := image.Rect(0, 0, s.w, s.h)
		union := l.Header.Union(l.Footer).Union(l.Original).Union(l.Processed)
		if union != canvas {
			t.Errorf("%dx%d: regions union to %v, want %v", s.w, s.h, union, canvas)
		}

		if l.Original.Dy() != l.Processed.Dy() {
			t.Errorf("%dx%d: panel heights differ: %d vs %d", s.w, s.h, l.Original.Dy(), l.Processed.Dy())
		}
	}
}

func TestButtons_CenteredAndContiguous(t *testing.T) {
	theme := DefaultTheme()
	header := Compute(1920, 1080).Header
	buttons := theme.Buttons(header)

	total := 3*theme.ButtonWidth + 2*theme.ButtonMargin
	wantStart := (header.Dx() - total) / 2
	if buttons[0].Rect.Min.X != wantStart {
		t.Errorf("first button starts at %d, want %d", buttons[0].Rect.Min.X, wantStart)
	}

	for i := 0; i < 2; i++ {
		gap := buttons[i+1].Rect.Min.X - buttons[i].Rect.Max.X
		if gap != theme.ButtonMargin {
			t.Errorf("gap between button %d and %d = %d, want %d", i, i+1, gap, theme.ButtonMargin)
		}
		if buttons[i].Rect.Overlaps(buttons[i+1].Rect) {
			t.Errorf("buttons %d and %d overlap", i, i+1)
		}
	}

	for i, b := range buttons {
		if b.Rect.Dx() != theme.ButtonWidth || b.Rect.Dy() != theme.ButtonHeight {
			t.Errorf("button %d is %dx%d, want %dx%d",
				i, b.Rect.Dx(), b.Rect.Dy(), theme.ButtonWidth, theme.ButtonHeight)
		}
		if !b.Rect.In(header) {
			t.Errorf("button %d %v escapes header %v", i, b.Rect, header)
		}
	}

	want := [3]filter.Selection{filter.Red, filter.Green, filter.Blue}
	for i, b := range buttons {
		if b.Sel != want[i] {
			t.Errorf("button %d bound to %v, want %v", i, b.Sel, want[i])
		}
	}
}

func TestHitTest_GreenButtonCenter(t *testing.T) {
	theme := DefaultTheme()
	header := Compute(1920, 1080).Header

	var green image.Rectangle
	for _, b := range theme.Buttons(header) {
		if b.Sel == filter.Green {
			green = b.Rect
		}
	}

	cx := green.Min.X + green.Dx()/2
	cy := green.Min.Y + green.Dy()/2
	sel, ok := theme.HitTest(header, cx, cy)
	if !ok || sel != filter.Green {
		t.Errorf("click at green center (%d,%d) = (%v,%v), want (Green,true)", cx, cy, sel, ok)
	}
}

func TestHitTest_OutsideHeaderBand(t *testing.T) {
	theme := DefaultTheme()
	header := Compute(1920, 1080).Header

	var green image.Rectangle
	for _, b := range theme.Buttons(header) {
		if b.Sel == filter.Green {
			green = b.Rect
		}
	}
	cx := green.Min.X + green.Dx()/2

	// One pixel above the band
	if _, ok := theme.HitTest(header, cx, header.Min.Y-1); ok {
		t.Error("click above the header band matched a button")
	}
	// First row below the band
	if _, ok := theme.HitTest(header, cx, header.Max.Y); ok {
		t.Error("click below the header band matched a button")
	}
}

func TestHitTest_OriginNoMatch(t *testing.T) {
	theme := DefaultTheme()
	header := Compute(1920, 1080).Header

	if sel, ok := theme.HitTest(header, 0, 0); ok {
		t.Errorf("click at (0,0) matched %v, want no match", sel)
	}
}

func TestBrighten_Clamps(t *testing.T) {
	theme := DefaultTheme()
	c := theme.Brighten(theme.Buttons3[0].Fill) // red: 220 must clamp
	if c.R != 255 {
		t.Errorf("brightened red channel = %d, want 255", c.R)
	}
	if c.G != theme.Buttons3[0].Fill.G+theme.SelectedBoost {
		t.Errorf("brightened green channel = %d, want %d", c.G, theme.Buttons3[0].Fill.G+theme.SelectedBoost)
	}
}
