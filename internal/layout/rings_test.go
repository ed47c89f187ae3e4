package layout

import (
	"math"
	"testing"

	"github.com/iburimskiy/mood-ambience/internal/config"
	"github.com/iburimskiy/mood-ambience/internal/mood"
)

func testRings() *Rings {
	r := &Rings{}
	r.Resize(1024, 640)
	return r
}

func TestRingHit(t *testing.T) {
	r := testRings()
	c := r.center
	tests := []struct {
		name string
		p    mood.Point
		want mood.Ring
	}{
		{"center", c, mood.RingNone},
		{"time band", mood.Point{X: c.X + config.TimeRingRadius, Y: c.Y}, mood.RingTime},
		{"weather band", mood.Point{X: c.X, Y: c.Y - config.WeatherRingRadius}, mood.RingWeather},
		{"outside", mood.Point{X: c.X - 200, Y: c.Y}, mood.RingNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Hit(tt.p); got != tt.want {
				t.Errorf("hit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRingCenter(t *testing.T) {
	r := testRings()
	if _, ok := r.RingCenter(mood.RingNone); ok {
		t.Fatal("RingNone has a center")
	}
	p, ok := r.RingCenter(mood.RingWeather)
	if !ok || p != r.center {
		t.Fatalf("weather center = %v, %v", p, ok)
	}
}

func TestMarkerAndIconHit(t *testing.T) {
	r := testRings()
	noon := r.At(mood.RingTime, TimeAngle(0.75))
	if name, ok := r.Marker(noon); !ok || name != "noon" {
		t.Fatalf("marker at noon position = %q, %v", name, ok)
	}
	rain := r.At(mood.RingWeather, WeatherAngle(mood.WeatherRain))
	if name, ok := r.Icon(rain); !ok || name != "rain" {
		t.Fatalf("icon at rain position = %q, %v", name, ok)
	}
	if _, ok := r.Marker(r.center); ok {
		t.Fatal("center hit a marker")
	}
}

func TestDragAlongTimeRing(t *testing.T) {
	r := testRings()
	c := mood.NewController(r)
	c.Restore(0, mood.WeatherClear)

	c.StartDrag(mood.RingTime, r.At(mood.RingTime, TimeAngle(0)))
	c.HandleDrag(r.At(mood.RingTime, TimeAngle(0.25)))
	if math.Abs(c.Time()-0.25) > 1e-9 {
		t.Fatalf("clockwise quarter drag gave %v", c.Time())
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[float64]string{0: "00:00", 0.25: "06:00", 0.5: "12:00", 0.999: "23:58"}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestWrapPi(t *testing.T) {
	for _, a := range []float64{0, 1, -1, 3 * math.Pi, -3 * math.Pi, 7} {
		got := WrapPi(a)
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("WrapPi(%v) = %v", a, got)
		}
		if d := math.Mod(math.Abs(got-a), 2*math.Pi); d > 1e-9 && 2*math.Pi-d > 1e-9 {
			t.Fatalf("WrapPi(%v) = %v changes the angle", a, got)
		}
	}
}
