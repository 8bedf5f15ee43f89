// Package display abstracts the windowing surface that presents the
// composed canvas and reports pointer events.
package display

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Surface is the display collaborator. One tick presents one canvas;
// pointer callbacks and the quit key are both sampled inside PollQuit's
// event poll, on the loop thread.
type Surface interface {
	Create(fullscreen bool) error
	Resolution() (width, height int)
	Present(canvas gocv.Mat)
	SetPointerHandler(fn func(x, y int))
	PollQuit() bool
	Destroy() error
}

// cv::EVENT_LBUTTONDOWN
const leftButtonDown = 1

// Window is the gocv highgui implementation of Surface.
type Window struct {
	name    string
	width   int
	height  int
	win     *gocv.Window
	handler func(x, y int)
}

// NewWindow prepares a window without creating it. width and height
// are the display resolution the layout is computed from.
func NewWindow(name string, width, height int) *Window {
	return &Window{name: name, width: width, height: height}
}

// Create opens the window, full-screen when asked.
func (w *Window) Create(fullscreen bool) error {
	if w.win != nil {
		return errors.New("display: window already created")
	}
	w.win = gocv.NewWindow(w.name)
	if fullscreen {
		w.win.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	}
	return nil
}

// Resolution returns the configured display size.
func (w *Window) Resolution() (int, int) {
	return w.width, w.height
}

// Present shows the canvas.
func (w *Window) Present(canvas gocv.Mat) {
	w.win.IMShow(canvas)
}

// SetPointerHandler forwards left-button-down events to fn. Callbacks
// are delivered while the loop sits in PollQuit, so they run on the
// loop thread.
func (w *Window) SetPointerHandler(fn func(x, y int)) {
	w.handler = fn
	w.win.SetMouseHandler(func(event, x, y, flags int, _ interface{}) {
		if event == leftButtonDown && w.handler != nil {
			w.handler(x, y)
		}
	}, nil)
}

// PollQuit pumps the event loop for one millisecond and reports
// whether the quit key ('q' or ESC) was pressed.
func (w *Window) PollQuit() bool {
	key := w.win.WaitKey(1)
	return key == 'q' || key == 27
}

// Destroy tears the window down. Safe to call when Create never ran.
func (w *Window) Destroy() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}
