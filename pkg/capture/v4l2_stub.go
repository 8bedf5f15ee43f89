//go:build !linux

package capture

import "github.com/pkg/errors"

// ByDevice is the V4L2 backend, available on Linux only.
func ByDevice(device string, width, height int) Opener {
	return func() (Source, error) {
		return nil, errors.WithMessagef(ErrOpen, "device %s: v4l2 backend requires linux", device)
	}
}
