//go:build linux

package capture

import (
	"strings"

	"github.com/blackjack/webcam"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// waitTimeoutSec bounds a single V4L2 frame wait. A handful of
// consecutive timeouts means the device stopped delivering.
const (
	waitTimeoutSec  = 1
	maxWaitTimeouts = 5
)

type v4l2Source struct {
	cam *webcam.Webcam
}

// ByDevice returns an Opener for the kernel V4L2 backend. The device
// must expose an MJPEG format; frames are decoded to BGR on read.
func ByDevice(device string, width, height int) Opener {
	return func() (Source, error) {
		cam, err := webcam.Open(device)
		if err != nil {
			return nil, errors.WithMessagef(ErrOpen, "device %s: %v", device, err)
		}

		format, ok := mjpegFormat(cam.GetSupportedFormats())
		if !ok {
			cam.Close()
			return nil, errors.WithMessagef(ErrOpen, "device %s has no MJPEG format", device)
		}

		if _, _, _, err := cam.SetImageFormat(format, uint32(width), uint32(height)); err != nil {
			cam.Close()
			return nil, errors.WithMessagef(ErrOpen, "device %s: set format: %v", device, err)
		}

		if err := cam.StartStreaming(); err != nil {
			cam.Close()
			return nil, errors.WithMessagef(ErrOpen, "device %s: start streaming: %v", device, err)
		}

		return &v4l2Source{cam: cam}, nil
	}
}

func mjpegFormat(formats map[webcam.PixelFormat]string) (webcam.PixelFormat, bool) {
	for f, name := range formats {
		if strings.Contains(strings.ToUpper(name), "JPEG") {
			return f, true
		}
	}
	return 0, false
}

func (s *v4l2Source) Read(dst *gocv.Mat) bool {
	timeouts := 0
	for {
		err := s.cam.WaitForFrame(waitTimeoutSec)
		switch err.(type) {
		case nil:
		case *webcam.Timeout:
			timeouts++
			if timeouts >= maxWaitTimeouts {
				return false
			}
			continue
		default:
			return false
		}

		buf, err := s.cam.ReadFrame()
		if err != nil || len(buf) == 0 {
			return false
		}

		decoded, err := gocv.IMDecode(buf, gocv.IMReadColor)
		if err != nil || decoded.Empty() {
			// Partial MJPEG frames happen on some devices; wait for
			// the next one.
			continue
		}
		decoded.CopyTo(dst)
		decoded.Close()
		return true
	}
}

func (s *v4l2Source) Close() error {
	return s.cam.Close()
}
