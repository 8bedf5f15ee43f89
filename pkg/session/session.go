// Package session runs the capture-render-present loop.
package session

import (
	"image"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/percept3d/streamview/internal/log"
	"github.com/percept3d/streamview/pkg/capture"
	"github.com/percept3d/streamview/pkg/display"
	"github.com/percept3d/streamview/pkg/filter"
	"github.com/percept3d/streamview/pkg/render"
	"github.com/percept3d/streamview/pkg/ui"
)

// Options tune a session. Zero values are not valid; use
// DefaultOptions.
type Options struct {
	Theme      ui.Theme
	Ratio      float64 // panel scale, frame width multiplier
	Fullscreen bool

	// Initial is the filter selection active before any click.
	Initial filter.Selection
}

// DefaultOptions returns the stock viewer setup: full screen, streams
// drawn at 1.2x their native width.
func DefaultOptions() Options {
	return Options{
		Theme:      ui.DefaultTheme(),
		Ratio:      1.2,
		Fullscreen: true,
	}
}

// Session owns the per-run state: the selected filter, the FPS meter
// and the two external collaborators. The selected filter is written
// only by the pointer router and read only by the renderer; both run
// on the loop thread, so no locking is needed.
type Session struct {
	id      string
	open    capture.Opener
	surface display.Surface
	opts    Options

	selected filter.Selection
	meter    *render.Meter
	now      func() time.Time
}

// New builds a session. The camera is not touched until Run.
func New(open capture.Opener, surface display.Surface, opts Options) *Session {
	return &Session{
		id:       uuid.NewString(),
		open:     open,
		surface:  surface,
		opts:     opts,
		selected: opts.Initial,
		meter:    render.NewMeter(),
		now:      time.Now,
	}
}

// Selected returns the current filter selection.
func (s *Session) Selected() filter.Selection {
	return s.selected
}

// Run drives the session to completion: open the camera, create the
// window, then tick until the quit key is pressed or the camera stops
// delivering frames. The camera and window are released on every exit
// path. A camera that fails to open aborts before any window is
// created.
func (s *Session) Run() error {
	logger := log.With("session", s.id)

	src, err := s.open()
	if err != nil {
		return errors.WithMessage(err, "session: capture open")
	}
	defer src.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	// First frame establishes the native size before the window
	// exists.
	if !src.Read(&frame) {
		return errors.WithMessage(capture.ErrExhausted, "session: first frame")
	}
	logger.Info("capture opened", "frame_width", frame.Cols(), "frame_height", frame.Rows())

	if err := s.surface.Create(s.opts.Fullscreen); err != nil {
		return errors.WithMessage(err, "session: create window")
	}
	defer s.surface.Destroy()

	screenW, screenH := s.surface.Resolution()
	layout := ui.Compute(screenW, screenH)
	comp := render.New(s.opts.Theme, layout, s.opts.Ratio)
	logger.Info("running", "screen_width", screenW, "screen_height", screenH)

	s.surface.SetPointerHandler(func(x, y int) {
		s.routeClick(layout.Header, x, y)
	})

	for {
		if !src.Read(&frame) {
			return errors.WithMessage(capture.ErrExhausted, "session: read frame")
		}

		fps := s.meter.Tick(s.now())

		canvas := render.NewCanvas(screenW, screenH, s.opts.Theme.Background)
		comp.Render(&canvas, frame, s.selected, fps)
		s.surface.Present(canvas)
		canvas.Close()

		if s.surface.PollQuit() {
			logger.Info("quit requested", "fps", fps)
			return nil
		}
	}
}

// routeClick maps a pointer-down event to a button using the same
// geometry the header renderer draws with, and updates the selection
// on a hit.
func (s *Session) routeClick(header image.Rectangle, x, y int) {
	sel, ok := s.opts.Theme.HitTest(header, x, y)
	if !ok {
		return
	}
	s.selected = sel
	log.Debug("filter selected", "session", s.id, "filter", sel.String())
}
