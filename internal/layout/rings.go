// Package layout holds the screen geometry of the gesture rings.
package layout

import (
	"math"

	"github.com/iburimskiy/mood-ambience/internal/config"
	"github.com/iburimskiy/mood-ambience/internal/mood"
)

// Rings places the two concentric gesture rings in the bottom-right corner
// of a w×h screen. It implements mood.Layout.
type Rings struct {
	center mood.Point
}

// Resize recomputes the ring center for a w×h screen.
func (r *Rings) Resize(w, h int) {
	off := float64(config.RingMargin + config.TimeRingRadius + config.RingThickness/2)
	r.center = mood.Point{X: float64(w) - off, Y: float64(h) - off}
}

// Center returns the shared center of both rings.
func (r *Rings) Center() mood.Point { return r.center }

func (r *Rings) RingCenter(ring mood.Ring) (mood.Point, bool) {
	switch ring {
	case mood.RingTime, mood.RingWeather:
		return r.center, true
	default:
		return mood.Point{}, false
	}
}

// Radius returns the band radius of ring.
func (r *Rings) Radius(ring mood.Ring) float64 {
	if ring == mood.RingTime {
		return config.TimeRingRadius
	}
	return config.WeatherRingRadius
}

// Hit returns the ring whose band contains p.
func (r *Rings) Hit(p mood.Point) mood.Ring {
	d := math.Hypot(p.X-r.center.X, p.Y-r.center.Y)
	half := float64(config.RingThickness) / 2
	switch {
	case math.Abs(d-config.TimeRingRadius) <= half:
		return mood.RingTime
	case math.Abs(d-config.WeatherRingRadius) <= half:
		return mood.RingWeather
	default:
		return mood.RingNone
	}
}

// TimeAngle is where a day fraction sits on the time ring; 0 is at the top
// and time runs clockwise.
func TimeAngle(t float64) float64 {
	return t*2*math.Pi - math.Pi/2
}

// WeatherAngle puts clear at the top and steps a quarter turn per code.
func WeatherAngle(w mood.Weather) float64 {
	return float64(w-1)*math.Pi/2 - math.Pi/2
}

// At returns the point on ring at angle.
func (r *Rings) At(ring mood.Ring, angle float64) mood.Point {
	rad := r.Radius(ring)
	return mood.Point{X: r.center.X + math.Cos(angle)*rad, Y: r.center.Y + math.Sin(angle)*rad}
}

func near(a, b mood.Point, within float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= within
}

// Marker returns the time preset drawn under p.
func (r *Rings) Marker(p mood.Point) (string, bool) {
	for _, m := range mood.Markers() {
		if near(p, r.At(mood.RingTime, TimeAngle(m.Time)), config.MarkerRadius+3) {
			return m.Name, true
		}
	}
	return "", false
}

// Icon returns the weather preset drawn under p.
func (r *Rings) Icon(p mood.Point) (string, bool) {
	for i, name := range mood.WeatherPresets() {
		if near(p, r.At(mood.RingWeather, WeatherAngle(mood.Weather(i+1))), config.IconRadius+3) {
			return name, true
		}
	}
	return "", false
}
