package scene

import (
	"errors"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrCanvasUnavailable is returned when no drawable surface can be obtained.
// Nothing can render without one, so setup must abort.
var ErrCanvasUnavailable = errors.New("scene: canvas unavailable")

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface a frame is painted on.
type Canvas interface {
	Size() (w, h int)
	Clear()
	// FillGradient fills the whole canvas with a linear gradient running
	// from (x0,y0) in color from to (x1,y1) in color to.
	FillGradient(x0, y0, x1, y1 float64, from, to color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	// StrokePolyline must not keep pts; the caller reuses the slice.
	StrokePolyline(pts []Point, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// rgba converts a colorful color and an opacity to a non-premultiplied color.
func rgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func white(alpha float64) color.NRGBA {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(clamp01(alpha)*255 + 0.5)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lighten blends c toward white by amount in [0,1].
func Lighten(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, clamp01(amount)).Clamped()
}

// GradientAt returns the blend position of (x,y) along the line from
// (x0,y0) to (x1,y1), clamped to [0,1]. Canvas implementations without a
// native gradient use it to shade pixels.
func GradientAt(x, y, x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return clamp01(((x-x0)*dx + (y-y0)*dy) / den)
}

// quadTo appends the flattened quadratic Bézier from the last point in pts
// through control c to end e.
func quadTo(pts []Point, c, e Point, steps int) []Point {
	p0 := pts[len(pts)-1]
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		pts = append(pts, Point{
			X: u*u*p0.X + 2*u*t*c.X + t*t*e.X,
			Y: u*u*p0.Y + 2*u*t*c.Y + t*t*e.Y,
		})
	}
	return pts
}
