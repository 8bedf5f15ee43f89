// Package capture abstracts the camera so the session loop can be fed
// by OpenCV, by the kernel V4L2 interface, or by a test fake.
package capture

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Sentinel conditions for the two ways a camera fails.
var (
	// ErrOpen reports that the device could not be opened at startup.
	ErrOpen = errors.New("capture: open failed")
	// ErrExhausted reports that a mid-session frame read failed; the
	// stream is over and the session must terminate.
	ErrExhausted = errors.New("capture: source exhausted")
)

// Source produces BGR frames on demand. Read reports false when the
// stream is exhausted; the dst Mat is reused across calls.
type Source interface {
	Read(dst *gocv.Mat) bool
	Close() error
}

// Opener defers device acquisition so a session can be constructed
// before the camera is touched.
type Opener func() (Source, error)

type cvSource struct {
	cap *gocv.VideoCapture
}

// ByIndex returns an Opener for the OpenCV capture backend.
func ByIndex(index int) Opener {
	return func() (Source, error) {
		cap, err := gocv.OpenVideoCapture(index)
		if err != nil {
			return nil, errors.WithMessagef(ErrOpen, "device %d: %v", index, err)
		}
		if !cap.IsOpened() {
			cap.Close()
			return nil, errors.WithMessagef(ErrOpen, "device %d not opened", index)
		}
		return &cvSource{cap: cap}, nil
	}
}

func (s *cvSource) Read(dst *gocv.Mat) bool {
	return s.cap.Read(dst) && !dst.Empty()
}

func (s *cvSource) Close() error {
	return s.cap.Close()
}
