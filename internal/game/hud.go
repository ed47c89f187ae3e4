package game

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mood-ambience/internal/config"
	"github.com/iburimskiy/mood-ambience/internal/layout"
	"github.com/iburimskiy/mood-ambience/internal/mood"
)

// knob is a ring indicator that springs toward its target angle.
type knob struct {
	angle, vel float64
}

func (k *knob) follow(s harmonica.Spring, target float64) {
	// Approach along the short way round.
	target = k.angle + layout.WrapPi(target-k.angle)
	k.angle, k.vel = s.Update(k.angle, k.vel, target)
}

// hud draws the ring widgets and the mood label. It is the style sink of the
// window: the accent color follows the published hue and lightness.
type hud struct {
	rings *layout.Rings

	spring      harmonica.Spring
	timeKnob    knob
	weatherKnob knob

	accent color.NRGBA
	dim    color.NRGBA

	buttonHovered bool
	buttonPressed bool
}

func newHUD(r *layout.Rings) *hud {
	h := &hud{
		rings:  r,
		spring: harmonica.NewSpring(harmonica.FPS(config.TPS), config.KnobFrequency, config.KnobDamping),
	}
	h.PublishStyle(mood.Style{Lightness: 0.7, Saturation: 1, HueRotate: 200})
	return h
}

func (h *hud) PublishStyle(s mood.Style) {
	c := colorful.Hsv(s.HueRotate, layout.Clamp01(0.45*s.Saturation), 0.75+0.25*s.Lightness)
	r, g, b := c.Clamped().RGB255()
	h.accent = color.NRGBA{R: r, G: g, B: b, A: 230}
	h.dim = color.NRGBA{R: r, G: g, B: b, A: 90}
}

func (h *hud) update(st mood.State) {
	h.timeKnob.follow(h.spring, layout.TimeAngle(st.Time))
	h.weatherKnob.follow(h.spring, layout.WeatherAngle(st.Weather))
}

func fpt(p mood.Point) (float32, float32) { return float32(p.X), float32(p.Y) }

func (h *hud) draw(screen *ebiten.Image, c *mood.Controller) {
	st := c.State()
	center := h.rings.Center()
	cx, cy := fpt(center)

	for _, ring := range []mood.Ring{mood.RingTime, mood.RingWeather} {
		clr := h.dim
		if active, dragging := c.Dragging(); dragging && active == ring {
			clr = h.accent
		}
		vector.StrokeCircle(screen, cx, cy, float32(h.rings.Radius(ring)), config.RingThickness, clr, true)
	}

	disp := c.Display()
	active := map[string]bool{}
	for _, m := range disp.ActiveMarkers {
		active[m] = true
	}
	for _, m := range mood.Markers() {
		x, y := fpt(h.rings.At(mood.RingTime, layout.TimeAngle(m.Time)))
		clr := color.NRGBA{R: 255, G: 255, B: 255, A: 120}
		if active[m.Name] {
			clr = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		vector.DrawFilledCircle(screen, x, y, config.MarkerRadius, clr, true)
	}

	for i, name := range mood.WeatherPresets() {
		w := mood.Weather(i + 1)
		p := h.rings.At(mood.RingWeather, layout.WeatherAngle(w))
		drawIcon(screen, w, p, name == disp.ActiveWeather)
	}

	kx, ky := fpt(h.rings.At(mood.RingTime, h.timeKnob.angle))
	vector.StrokeCircle(screen, kx, ky, config.RingThickness/2, 2, h.accent, true)
	kx, ky = fpt(h.rings.At(mood.RingWeather, h.weatherKnob.angle))
	vector.StrokeCircle(screen, kx, ky, config.RingThickness/2, 2, h.accent, true)

	label := disp.Label + "  " + layout.FormatClock(st.Time)
	lx := int(center.X) - len(label)*3
	ly := int(center.Y) - config.TimeRingRadius - config.RingThickness - 16
	ebitenutil.DebugPrintAt(screen, label, lx, ly)

	h.drawButton(screen)
}

func drawIcon(screen *ebiten.Image, w mood.Weather, p mood.Point, active bool) {
	x, y := fpt(p)
	alpha := uint8(140)
	if active {
		alpha = 255
	}
	r := float32(config.IconRadius)
	switch w {
	case mood.WeatherClear:
		vector.DrawFilledCircle(screen, x, y, r*0.6, color.NRGBA{R: 255, G: 220, B: 90, A: alpha}, true)
	case mood.WeatherCloudy:
		clr := color.NRGBA{R: 235, G: 235, B: 245, A: alpha}
		vector.DrawFilledCircle(screen, x-r*0.35, y+r*0.1, r*0.5, clr, true)
		vector.DrawFilledCircle(screen, x+r*0.3, y-r*0.1, r*0.6, clr, true)
	case mood.WeatherRain:
		clr := color.NRGBA{R: 150, G: 200, B: 255, A: alpha}
		for i := -1; i <= 1; i++ {
			dx := float32(i) * r * 0.5
			vector.StrokeLine(screen, x+dx-r*0.25, y-r*0.6, x+dx+r*0.25, y+r*0.6, 1.5, clr, true)
		}
	case mood.WeatherSnow:
		clr := color.NRGBA{R: 255, G: 255, B: 255, A: alpha}
		vector.StrokeLine(screen, x-r*0.7, y, x+r*0.7, y, 1.5, clr, true)
		vector.StrokeLine(screen, x, y-r*0.7, x, y+r*0.7, 1.5, clr, true)
		vector.DrawFilledCircle(screen, x, y, 2, clr, true)
	}
	if active {
		vector.StrokeCircle(screen, x, y, r+2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, true)
	}
}

func (h *hud) overButton(x, y int) bool {
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}

func (h *hud) drawButton(screen *ebiten.Image) {
	var bg color.NRGBA
	switch {
	case h.buttonPressed:
		bg = color.NRGBA{R: 30, G: 36, B: 52, A: 220}
	case h.buttonHovered:
		bg = color.NRGBA{R: 50, G: 58, B: 80, A: 220}
	default:
		bg = color.NRGBA{R: 40, G: 46, B: 66, A: 180}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bg, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, h.accent, false)

	text := "Save PNG"
	textX := config.ButtonX + (config.ButtonWidth-len(text)*6)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}
