// Package filter isolates a single color channel of a captured frame.
package filter

import (
	"strings"

	"gocv.io/x/gocv"
)

// Selection identifies which color channel is isolated for the
// processed panel. None leaves the frame untouched.
type Selection int

const (
	None Selection = iota
	Red
	Green
	Blue
)

// String returns the lower-case name used in config files and logs.
func (s Selection) String() string {
	switch s {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Parse maps a name back to a Selection. Unknown names map to None.
func Parse(name string) Selection {
	switch strings.ToLower(name) {
	case "red":
		return Red
	case "green":
		return Green
	case "blue":
		return Blue
	default:
		return None
	}
}

// channelIndex returns the plane index in OpenCV's BGR ordering.
func (s Selection) channelIndex() int {
	switch s {
	case Blue:
		return 0
	case Green:
		return 1
	case Red:
		return 2
	default:
		return -1
	}
}

// Apply returns a new frame of identical dimensions in which only the
// selected channel retains the source values. For None the result is a
// plain copy. The source frame is never mutated.
//
// The caller owns the returned Mat and must Close it.
func Apply(src gocv.Mat, sel Selection) gocv.Mat {
	dst := gocv.NewMat()
	if sel == None {
		src.CopyTo(&dst)
		return dst
	}

	planes := gocv.Split(src)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()

	zero := gocv.Zeros(src.Rows(), src.Cols(), gocv.MatTypeCV8UC1)
	defer zero.Close()

	keep := sel.channelIndex()
	merged := make([]gocv.Mat, len(planes))
	for i := range planes {
		if i == keep {
			merged[i] = planes[i]
		} else {
			merged[i] = zero
		}
	}
	gocv.Merge(merged, &dst)
	return dst
}
