// Package mood holds the time-of-day/weather state and the ring gestures
// that change it.
package mood

import (
	"math"

	"github.com/iburimskiy/mood-ambience/internal/particle"
)

// Point is a pointer or touch position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Layout locates the ring widgets on screen.
type Layout interface {
	RingCenter(r Ring) (Point, bool)
}

// Listener is told the particle kind to regenerate after each mood change.
type Listener interface {
	MoodChanged(kind particle.Kind)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(particle.Kind)

func (f ListenerFunc) MoodChanged(k particle.Kind) { f(k) }

// Display is the human-facing summary of the current mood.
type Display struct {
	TimeName      string
	WeatherName   string
	Icon          string
	Label         string
	ActiveMarkers []string
	ActiveWeather string
}

// Controller owns the mood state. Gestures and presets mutate it; the
// render loop only reads it. It is not safe for concurrent use.
type Controller struct {
	state     State
	layout    Layout
	sinks     []StyleSink
	listeners []Listener
	display   Display
}

// NewController returns a controller at morning, clear weather.
func NewController(layout Layout) *Controller {
	c := &Controller{
		layout: layout,
		state:  State{Time: 0.5, Weather: WeatherClear},
	}
	c.display = displayOf(c.state)
	return c
}

// AddSink registers a style sink.
func (c *Controller) AddSink(s StyleSink) {
	c.sinks = append(c.sinks, s)
}

// AddListener registers a mood-change listener.
func (c *Controller) AddListener(l Listener) {
	c.listeners = append(c.listeners, l)
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Time returns the continuous time of day.
func (c *Controller) Time() float64 { return c.state.Time }

// Weather returns the weather code.
func (c *Controller) Weather() Weather { return c.state.Weather }

// Bucket returns the nearest named time-of-day bucket.
func (c *Controller) Bucket() Bucket { return Nearest(c.state.Time) }

// Profile returns the current weather profile.
func (c *Controller) Profile() Profile { return c.state.Weather.Profile() }

// Style returns the parameters that would be published for the current state.
func (c *Controller) Style() Style { return StyleOf(c.state) }

// Display returns the summary computed at the last change.
func (c *Controller) Display() Display { return c.display }

func (c *Controller) angleTo(r Ring, p Point) (float64, bool) {
	center, ok := c.layout.RingCenter(r)
	if !ok {
		return 0, false
	}
	return math.Atan2(p.Y-center.Y, p.X-center.X), true
}

// StartDrag begins a rotation gesture on ring r at pointer p.
func (c *Controller) StartDrag(r Ring, p Point) {
	if !r.valid() || c.layout == nil {
		return
	}
	angle, ok := c.angleTo(r, p)
	if !ok {
		return
	}
	c.state.Dragging = true
	c.state.ActiveRing = r
	c.state.StartAngle = angle
}

// HandleDrag applies the rotation between the gesture start and p.
// StartAngle stays fixed, so repeated moves keep adding the full rotation
// since the gesture began.
func (c *Controller) HandleDrag(p Point) {
	if !c.state.Dragging || c.state.ActiveRing == RingNone {
		return
	}
	current, ok := c.angleTo(c.state.ActiveRing, p)
	if !ok {
		return
	}
	angleDiff := current - c.state.StartAngle

	switch c.state.ActiveRing {
	case RingTime:
		c.state.Time = applyTimeDelta(c.state.Time, angleDiff)
	case RingWeather:
		c.state.Weather = applyWeatherDelta(c.state.Weather, angleDiff)
	}
	c.changed()
}

// StopDrag ends the gesture. Calling it without a drag is harmless.
func (c *Controller) StopDrag() {
	c.state.Dragging = false
	c.state.ActiveRing = RingNone
	c.state.StartAngle = 0
}

// Dragging reports the ring under an active gesture.
func (c *Controller) Dragging() (Ring, bool) {
	return c.state.ActiveRing, c.state.Dragging
}

// SetTimeByPreset jumps to a named time. Unknown names are ignored.
func (c *Controller) SetTimeByPreset(name string) {
	t, ok := timePresets[name]
	if !ok {
		return
	}
	c.state.Time = t
	c.changed()
}

// SetWeatherByPreset jumps to a named weather. Unknown names are ignored.
func (c *Controller) SetWeatherByPreset(name string) {
	w, ok := weatherPresets[name]
	if !ok {
		return
	}
	c.state.Weather = w
	c.changed()
}

// Restore loads a previously saved mood, folding the values back into range.
func (c *Controller) Restore(t float64, w Weather) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}
	c.state.Time = wrapTime(t)
	c.state.Weather = clampWeather(w)
	c.changed()
}

// Publish pushes the current style and particle kind without changing the
// state. Hosts call it once after wiring sinks and listeners.
func (c *Controller) Publish() {
	c.changed()
}

func (c *Controller) changed() {
	c.display = displayOf(c.state)

	style := StyleOf(c.state)
	for _, s := range c.sinks {
		s.PublishStyle(style)
	}

	kind := c.state.Weather.Profile().Particle
	for _, l := range c.listeners {
		l.MoodChanged(kind)
	}
}

func displayOf(s State) Display {
	b := Nearest(s.Time)
	p := s.Weather.Profile()
	d := Display{
		TimeName:    b.Name,
		WeatherName: p.Name,
		Icon:        p.Icon,
		Label:       b.Name + " · " + p.Name,
	}
	for _, m := range Markers() {
		if math.Abs(s.Time-m.Time) < 0.1 {
			d.ActiveMarkers = append(d.ActiveMarkers, m.Name)
		}
	}
	for name, w := range weatherPresets {
		if w == s.Weather {
			d.ActiveWeather = name
		}
	}
	return d
}
