package mood

import "math"

// Ring identifies one of the two concentric gesture rings.
type Ring int

const (
	RingNone Ring = iota
	RingTime
	RingWeather
)

func (r Ring) String() string {
	switch r {
	case RingTime:
		return "time"
	case RingWeather:
		return "weather"
	default:
		return "none"
	}
}

func (r Ring) valid() bool { return r == RingTime || r == RingWeather }

// State is the mood: a continuous time of day plus a discrete weather code,
// and the bookkeeping of an in-progress drag.
type State struct {
	Time    float64 // [0,1)
	Weather Weather // 1..4

	Dragging   bool
	ActiveRing Ring
	StartAngle float64
}

// wrapTime folds t into [0,1).
func wrapTime(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	// t+1 rounds up to exactly 1 for tiny negative t.
	if t >= 1 {
		t = 0
	}
	return t
}

// roundHalfUp rounds like a browser's Math.round: halves go toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// applyTimeDelta turns a ring rotation of angleDiff radians into a time shift.
// One full turn is one full day.
func applyTimeDelta(t, angleDiff float64) float64 {
	return wrapTime(t + angleDiff/(2*math.Pi))
}

// applyWeatherDelta steps weather once per quarter turn, clamped to 1..4.
func applyWeatherDelta(w Weather, angleDiff float64) Weather {
	steps := roundHalfUp(angleDiff / (math.Pi / 2))
	return clampWeather(w + Weather(steps))
}
