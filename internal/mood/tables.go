package mood

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mood-ambience/internal/particle"
)

// Bucket is a named time-of-day preset used for background selection.
type Bucket struct {
	Key   float64
	Name  string
	Color colorful.Color
	Light float64 // lightness factor in [0,1]
	Hue   float64 // hue rotation in degrees
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// buckets is sorted by Key; Nearest relies on the order for its tie-break.
var buckets = [...]Bucket{
	{Key: 0, Name: "night", Color: mustHex("#1a1a2e"), Light: 0.2, Hue: 240},
	{Key: 0.25, Name: "dawn", Color: mustHex("#4a4a8c"), Light: 0.4, Hue: 280},
	{Key: 0.5, Name: "morning", Color: mustHex("#87ceeb"), Light: 0.7, Hue: 200},
	{Key: 0.75, Name: "noon", Color: mustHex("#f0f8ff"), Light: 1.0, Hue: 180},
	{Key: 1, Name: "dusk", Color: mustHex("#ff7e5f"), Light: 0.6, Hue: 20},
}

// Buckets returns a copy of the time-of-day table.
func Buckets() []Bucket {
	out := make([]Bucket, len(buckets))
	copy(out, buckets[:])
	return out
}

// Nearest returns the bucket whose key is closest to t. On a tie the
// lower key wins.
func Nearest(t float64) Bucket {
	best := 0
	for i := 1; i < len(buckets); i++ {
		if math.Abs(buckets[i].Key-t) < math.Abs(buckets[best].Key-t) {
			best = i
		}
	}
	return buckets[best]
}

// Weather is the discrete weather code, 1 through 4.
type Weather int

const (
	WeatherClear Weather = iota + 1
	WeatherCloudy
	WeatherRain
	WeatherSnow
)

const (
	minWeather = WeatherClear
	maxWeather = WeatherSnow
)

// Profile describes how a weather code looks.
type Profile struct {
	Name       string
	Icon       string
	Particle   particle.Kind
	Blur       float64 // pixels
	Saturation float64
}

var profiles = map[Weather]Profile{
	WeatherClear:  {Name: "clear", Icon: "☀️", Particle: particle.KindSunbeam, Blur: 0, Saturation: 1.2},
	WeatherCloudy: {Name: "cloudy", Icon: "☁️", Particle: particle.KindCloud, Blur: 2, Saturation: 0.8},
	WeatherRain:   {Name: "rain", Icon: "🌧️", Particle: particle.KindRain, Blur: 5, Saturation: 0.7},
	WeatherSnow:   {Name: "snow", Icon: "❄️", Particle: particle.KindSnow, Blur: 3, Saturation: 0.9},
}

// Profile returns the lookup entry for w. Out-of-range codes are clamped first.
func (w Weather) Profile() Profile {
	return profiles[clampWeather(w)]
}

func (w Weather) String() string { return w.Profile().Name }

func clampWeather(w Weather) Weather {
	if w < minWeather {
		return minWeather
	}
	if w > maxWeather {
		return maxWeather
	}
	return w
}

// Preset names accepted by SetTimeByPreset and SetWeatherByPreset.
var (
	timePresets = map[string]float64{
		"night": 0,
		"dawn":  0.25,
		"noon":  0.75,
		"dusk":  0.9,
	}
	weatherPresets = map[string]Weather{
		"clear":  WeatherClear,
		"cloudy": WeatherCloudy,
		"rain":   WeatherRain,
		"snow":   WeatherSnow,
	}
)

// Marker is a clickable time preset on the time ring.
type Marker struct {
	Name string
	Time float64
}

// Markers lists the time presets in ring order.
func Markers() []Marker {
	return []Marker{
		{Name: "night", Time: timePresets["night"]},
		{Name: "dawn", Time: timePresets["dawn"]},
		{Name: "noon", Time: timePresets["noon"]},
		{Name: "dusk", Time: timePresets["dusk"]},
	}
}

// WeatherPresets lists the weather presets in code order.
func WeatherPresets() []string {
	return []string{"clear", "cloudy", "rain", "snow"}
}
