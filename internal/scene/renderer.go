// Package scene paints the mood background and runs the particle
// simulation once per frame.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/iburimskiy/mood-ambience/internal/mood"
	"github.com/iburimskiy/mood-ambience/internal/particle"
)

// GradientLighten is how far the far end of the background gradient is
// blended toward white.
const GradientLighten = 0.3

// MoodSource is the read-only view of the mood the renderer needs.
type MoodSource interface {
	Time() float64
	Weather() mood.Weather
	Bucket() mood.Bucket
}

var (
	sunbeamTint = particleTint{255, 255, 200}
	rainTint    = color.NRGBA{R: 150, G: 200, B: 255, A: 153}
	snowTint    = white(0.8)
)

type particleTint struct{ r, g, b uint8 }

func (p particleTint) alpha(a float64) color.NRGBA {
	return color.NRGBA{R: p.r, G: p.g, B: p.b, A: uint8(clamp01(a)*255 + 0.5)}
}

// Renderer owns the particle pool and paints frames for a mood it only reads.
type Renderer struct {
	mood  MoodSource
	pool  *particle.Pool
	noise opensimplex.Noise

	w, h    float64
	scratch []Point
}

// NewRenderer prepares a renderer for a w×h surface. A surface without area
// yields ErrCanvasUnavailable.
func NewRenderer(src MoodSource, w, h int, seed int64) (*Renderer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: surface is %dx%d", ErrCanvasUnavailable, w, h)
	}
	r := &Renderer{
		mood:    src,
		pool:    particle.NewPool(rand.New(rand.NewSource(seed)), float64(w), float64(h)),
		noise:   opensimplex.NewNormalized(seed),
		w:       float64(w),
		h:       float64(h),
		scratch: make([]Point, 0, 128),
	}
	r.pool.Generate(src.Weather().Profile().Particle)
	return r, nil
}

// MoodChanged regenerates the pool for the new weather.
func (r *Renderer) MoodChanged(k particle.Kind) {
	r.pool.Generate(k)
}

// Resize follows a change of the canvas dimensions. Particles placed for the
// old bounds are dropped by the next cull.
func (r *Renderer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if float64(w) == r.w && float64(h) == r.h {
		return
	}
	r.w, r.h = float64(w), float64(h)
	r.pool.Resize(r.w, r.h)
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (int, int) { return int(r.w), int(r.h) }

// Pool exposes the particle pool, mostly for inspection.
func (r *Renderer) Pool() *particle.Pool { return r.pool }

// Frame renders one complete frame: background, texture, then particles
// updated, drawn, culled and replenished.
func (r *Renderer) Frame(c Canvas, phase float64) {
	r.paintBackdrop(c, phase)
	r.pool.Update(phase)
	r.drawParticles(c)
	r.pool.Cull()
	r.pool.Replenish()
}

// Advance runs the simulation half of a frame.
func (r *Renderer) Advance(phase float64) {
	r.pool.Update(phase)
	r.pool.Cull()
	r.pool.Replenish()
}

// Paint draws the current state without advancing it.
func (r *Renderer) Paint(c Canvas, phase float64) {
	r.paintBackdrop(c, phase)
	r.drawParticles(c)
}

func (r *Renderer) paintBackdrop(c Canvas, phase float64) {
	c.Clear()
	b := r.mood.Bucket()
	c.FillGradient(0, 0, r.w, r.h, rgba(b.Color, 1), rgba(Lighten(b.Color, GradientLighten), 1))
	r.drawTexture(c, r.mood.Time(), r.mood.Weather(), phase)
}

func (r *Renderer) drawParticles(c Canvas) {
	for _, p := range r.pool.Particles() {
		switch p.Kind {
		case particle.KindSunbeam:
			c.StrokeLine(p.X, p.Y,
				p.X+math.Cos(p.Angle)*p.Length, p.Y+math.Sin(p.Angle)*p.Length,
				2, sunbeamTint.alpha(p.Opacity))
		case particle.KindCloud:
			clr := white(p.Density)
			c.FillCircle(p.X, p.Y, p.Size*0.5, clr)
			c.FillCircle(p.X+p.Size*0.3, p.Y-p.Size*0.2, p.Size*0.4, clr)
			c.FillCircle(p.X-p.Size*0.3, p.Y-p.Size*0.2, p.Size*0.4, clr)
		case particle.KindRain:
			c.StrokeLine(p.X, p.Y,
				p.X+math.Cos(p.Angle)*p.Length, p.Y+math.Sin(p.Angle)*p.Length,
				1, rainTint)
		case particle.KindSnow:
			c.FillCircle(p.X, p.Y, p.Size, snowTint)
		}
	}
}
