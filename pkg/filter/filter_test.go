package filter

import (
	"testing"

	"gocv.io/x/gocv"
)

// testFrame builds a small BGR frame with distinct values per channel.
func testFrame(t *testing.T) gocv.Mat {
	t.Helper()
	frame := gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC3)
	for r := 0; r < frame.Rows(); r++ {
		for c := 0; c < frame.Cols(); c++ {
			frame.SetUCharAt(r, c*3+0, 10) // blue
			frame.SetUCharAt(r, c*3+1, 20) // green
			frame.SetUCharAt(r, c*3+2, 30) // red
		}
	}
	return frame
}

func TestApply_IsolatesSingleChannel(t *testing.T) {
	cases := []struct {
		sel  Selection
		want [3]uint8 // expected B, G, R after filtering
	}{
		{Blue, [3]uint8{10, 0, 0}},
		{Green, [3]uint8{0, 20, 0}},
		{Red, [3]uint8{0, 0, 30}},
	}

	for _, tc := range cases {
		frame := testFrame(t)
		out := Apply(frame, tc.sel)

		if out.Rows() != frame.Rows() || out.Cols() != frame.Cols() {
			t.Errorf("%v: dimensions %dx%d, want %dx%d",
				tc.sel, out.Cols(), out.Rows(), frame.Cols(), frame.Rows())
		}

		for ch := 0; ch < 3; ch++ {
			if got := out.GetUCharAt(2, 3*3+ch); got != tc.want[ch] {
				t.Errorf("%v: channel %d = %d, want %d", tc.sel, ch, got, tc.want[ch])
			}
		}

		// Source must be untouched.
		if frame.GetUCharAt(2, 3*3+0) != 10 || frame.GetUCharAt(2, 3*3+1) != 20 || frame.GetUCharAt(2, 3*3+2) != 30 {
			t.Errorf("%v: source frame was mutated", tc.sel)
		}

		out.Close()
		frame.Close()
	}
}

func TestApply_NoneIsIdentityCopy(t *testing.T) {
	frame := testFrame(t)
	defer frame.Close()

	out := Apply(frame, None)
	defer out.Close()

	for r := 0; r < frame.Rows(); r++ {
		for c := 0; c < frame.Cols()*3; c++ {
			if out.GetUCharAt(r, c) != frame.GetUCharAt(r, c) {
				t.Fatalf("pixel (%d,%d) differs: %d vs %d",
					r, c, out.GetUCharAt(r, c), frame.GetUCharAt(r, c))
			}
		}
	}

	// Copy, not alias: mutating the result must not touch the source.
	out.SetUCharAt(0, 0, 99)
	if frame.GetUCharAt(0, 0) == 99 {
		t.Error("Apply(None) aliases the source frame")
	}
}

func TestSelection_StringRoundTrip(t *testing.T) {
	for _, sel := range []Selection{None, Red, Green, Blue} {
		if got := Parse(sel.String()); got != sel {
			t.Errorf("Parse(%q) = %v, want %v", sel.String(), got, sel)
		}
	}
	if got := Parse("sepia"); got != None {
		t.Errorf("Parse of unknown filter = %v, want None", got)
	}
	if got := Parse("GREEN"); got != Green {
		t.Errorf("Parse is case-sensitive: got %v, want Green", got)
	}
}
