package particle

// Kind tags the physics and drawing rules a particle follows.
type Kind int

const (
	KindNone Kind = iota
	KindSunbeam
	KindCloud
	KindRain
	KindSnow
)

var kindNames = [...]string{"none", "sunbeam", "cloud", "rain", "snow"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Target is the population the pool keeps for the kind.
func (k Kind) Target() int {
	switch k {
	case KindSunbeam:
		return 5
	case KindCloud:
		return 3
	case KindRain:
		return 50
	case KindSnow:
		return 30
	default:
		return 0
	}
}

// Wraps reports whether the kind loops across the canvas instead of being culled.
func (k Kind) Wraps() bool { return k == KindCloud }
