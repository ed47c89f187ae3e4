// Package snapshot paints frames off screen with gg and writes them as PNG.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/mood-ambience/internal/scene"
)

// Canvas is a scene.Canvas backed by an in-memory gg context.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas allocates a w×h surface.
func NewCanvas(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: snapshot surface is %dx%d", scene.ErrCanvasUnavailable, w, h)
	}
	dc := gg.NewContext(w, h)
	dc.SetLineCapRound()
	return &Canvas{dc: dc}, nil
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *Canvas) Clear() {
	c.dc.SetColor(color.Transparent)
	c.dc.Clear()
}

func (c *Canvas) FillGradient(x0, y0, x1, y1 float64, from, to color.Color) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	grad.AddColorStop(0, from)
	grad.AddColorStop(1, to)
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(0, 0, float64(c.dc.Width()), float64(c.dc.Height()))
	c.dc.Fill()
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x0, y0, x1, y1)
	c.dc.Stroke()
}

func (c *Canvas) StrokePolyline(pts []scene.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.Stroke()
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	c.dc.SetColor(clr)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

// Image returns the painted pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the current pixels to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the current pixels to path.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
