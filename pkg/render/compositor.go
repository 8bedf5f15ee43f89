// Package render composes the output canvas: header with filter
// buttons and FPS readout, footer, and the two scaled stream panels.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/percept3d/streamview/pkg/filter"
	"github.com/percept3d/streamview/pkg/ui"
)

// Compositor draws one canvas per tick from a fixed layout and theme.
type Compositor struct {
	theme  ui.Theme
	layout ui.Layout
	ratio  float64
}

// New returns a compositor for the given layout. ratio drives the
// panel scaling: a frame is drawn at frameWidth*ratio pixels wide,
// aspect preserved, centered on its panel.
func New(theme ui.Theme, layout ui.Layout, ratio float64) *Compositor {
	return &Compositor{theme: theme, layout: layout, ratio: ratio}
}

// NewCanvas allocates a background-filled BGR canvas.
func NewCanvas(w, h int, bg color.RGBA) gocv.Mat {
	scalar := gocv.NewScalar(float64(bg.B), float64(bg.G), float64(bg.R), 0)
	return gocv.NewMatWithSizeFromScalar(scalar, h, w, gocv.MatTypeCV8UC3)
}

// Render draws a complete tick onto the canvas: chrome first, then the
// unmodified stream on the left panel and the filtered stream on the
// right.
func (c *Compositor) Render(canvas *gocv.Mat, frame gocv.Mat, selected filter.Selection, fps float64) {
	c.DrawHeader(canvas, selected, fps)
	c.DrawFooter(canvas)
	c.DrawStream(canvas, c.layout.Original, frame)

	processed := filter.Apply(frame, selected)
	defer processed.Close()
	c.DrawStream(canvas, c.layout.Processed, processed)
}

// panelRect computes the destination rectangle for a frame scaled by
// ratio and centered on the target rectangle. The result may extend
// past the target (the deliberate "zoomed" look) and past the canvas.
func panelRect(frameW, frameH int, target image.Rectangle, ratio float64) image.Rectangle {
	if frameW <= 0 || frameH <= 0 {
		return image.Rectangle{}
	}
	dw := int(float64(frameW) * ratio)
	dh := int(float64(dw) * float64(frameH) / float64(frameW))

	cx := target.Min.X + target.Dx()/2
	cy := target.Min.Y + target.Dy()/2
	x1 := cx - dw/2
	y1 := cy - dh/2
	return image.Rect(x1, y1, x1+dw, y1+dh)
}

// DrawStream scales the frame and writes it centered on the target
// rectangle. Writes are clipped to the canvas, so an overscaled frame
// loses its off-screen margin instead of faulting.
func (c *Compositor) DrawStream(canvas *gocv.Mat, target image.Rectangle, frame gocv.Mat) {
	dst := panelRect(frame.Cols(), frame.Rows(), target, c.ratio)
	if dst.Dx() <= 0 || dst.Dy() <= 0 {
		return
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(frame, &resized, image.Pt(dst.Dx(), dst.Dy()), 0, 0, gocv.InterpolationLinear)

	bounds := image.Rect(0, 0, canvas.Cols(), canvas.Rows())
	visible := dst.Intersect(bounds)
	if visible.Empty() {
		return
	}

	src := resized.Region(visible.Sub(dst.Min))
	defer src.Close()
	out := canvas.Region(visible)
	defer out.Close()
	src.CopyTo(&out)
}

// DrawHeader paints the product label, the three filter buttons and the
// FPS readout. Button geometry comes from ui.Theme.Buttons, the same
// computation the pointer router uses.
func (c *Compositor) DrawHeader(canvas *gocv.Mat, selected filter.Selection, fps float64) {
	h := c.layout.Header
	baseline := h.Min.Y + int(0.65*float64(h.Dy()))

	gocv.PutText(canvas, c.theme.Label,
		image.Pt(h.Min.X+c.theme.ButtonMargin, baseline),
		gocv.FontHersheySimplex, 1.2, c.theme.HeaderText, 3)

	for _, b := range c.theme.Buttons(h) {
		style, ok := c.theme.Style(b.Sel)
		if !ok {
			continue
		}
		fill := style.Fill
		alpha := c.theme.BlendWeight
		if b.Sel == selected {
			fill = c.theme.Brighten(fill)
			alpha = 1.0
		}
		c.drawRoundedButton(canvas, b.Rect, fill, alpha)

		iconCenter := image.Pt(b.Rect.Min.X+30, b.Rect.Min.Y+b.Rect.Dy()/2)
		gocv.Circle(canvas, iconCenter, c.theme.IconRadius, style.Icon, -1)

		gocv.PutText(canvas, style.Label,
			image.Pt(b.Rect.Min.X+60, b.Rect.Min.Y+36),
			gocv.FontHersheyPlain, 2.1, c.theme.ButtonText, 2)
	}

	text := fmt.Sprintf("FPS: %.2f", fps)
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, 1, 2)
	gocv.PutText(canvas, text,
		image.Pt(h.Max.X-size.X-c.theme.ButtonMargin, baseline),
		gocv.FontHersheySimplex, 1, c.theme.HeaderText, 2)
}

// drawRoundedButton fills a rounded rectangle by overlaying two full
// rectangles and four corner circles, then alpha-blends the result
// back onto the canvas.
func (c *Compositor) drawRoundedButton(canvas *gocv.Mat, r image.Rectangle, fill color.RGBA, alpha float64) {
	area := canvas.Region(r)
	defer area.Close()
	overlay := area.Clone()
	defer overlay.Close()

	w, h := r.Dx(), r.Dy()
	rad := c.theme.CornerRadius
	gocv.Rectangle(&overlay, image.Rect(rad, 0, w-rad, h), fill, -1)
	gocv.Rectangle(&overlay, image.Rect(0, rad, w, h-rad), fill, -1)
	gocv.Circle(&overlay, image.Pt(rad, rad), rad, fill, -1)
	gocv.Circle(&overlay, image.Pt(w-rad, rad), rad, fill, -1)
	gocv.Circle(&overlay, image.Pt(rad, h-rad), rad, fill, -1)
	gocv.Circle(&overlay, image.Pt(w-rad, h-rad), rad, fill, -1)

	gocv.AddWeighted(overlay, alpha, area, 1-alpha, 0, &area)
}

// DrawFooter fills the footer band.
func (c *Compositor) DrawFooter(canvas *gocv.Mat) {
	gocv.Rectangle(canvas, c.layout.Footer, c.theme.FooterFill, -1)
}
