package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mood-ambience/internal/scene"
)

type gradientKey struct {
	w, h           int
	x0, y0, x1, y1 float64
	from, to       color.NRGBA
}

// screenCanvas adapts an ebiten image to scene.Canvas. The gradient is
// rasterized once and reused until its colors or the size change.
type screenCanvas struct {
	dst *ebiten.Image

	grad    *ebiten.Image
	gradKey gradientKey
	pix     []byte
}

func (c *screenCanvas) bind(dst *ebiten.Image) *screenCanvas {
	c.dst = dst
	return c
}

func (c *screenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *screenCanvas) Clear() { c.dst.Clear() }

func toNRGBA(clr color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

func (c *screenCanvas) FillGradient(x0, y0, x1, y1 float64, from, to color.Color) {
	w, h := c.Size()
	key := gradientKey{w: w, h: h, x0: x0, y0: y0, x1: x1, y1: y1, from: toNRGBA(from), to: toNRGBA(to)}
	if c.grad == nil || key != c.gradKey {
		c.rasterize(key)
	}
	c.dst.DrawImage(c.grad, nil)
}

func (c *screenCanvas) rasterize(k gradientKey) {
	if c.grad == nil || c.gradKey.w != k.w || c.gradKey.h != k.h {
		if c.grad != nil {
			c.grad.Deallocate()
		}
		c.grad = ebiten.NewImage(k.w, k.h)
		c.pix = make([]byte, 4*k.w*k.h)
	}
	lerp := func(a, b uint8, t float64) byte {
		return byte(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	for y := 0; y < k.h; y++ {
		for x := 0; x < k.w; x++ {
			t := scene.GradientAt(float64(x), float64(y), k.x0, k.y0, k.x1, k.y1)
			i := 4 * (y*k.w + x)
			c.pix[i] = lerp(k.from.R, k.to.R, t)
			c.pix[i+1] = lerp(k.from.G, k.to.G, t)
			c.pix[i+2] = lerp(k.from.B, k.to.B, t)
			c.pix[i+3] = 255
		}
	}
	c.grad.WritePixels(c.pix)
	c.gradKey = k
}

func (c *screenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *screenCanvas) StrokePolyline(pts []scene.Point, width float64, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(c.dst,
			float32(pts[i-1].X), float32(pts[i-1].Y), float32(pts[i].X), float32(pts[i].Y),
			float32(width), clr, true)
	}
}

func (c *screenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}
