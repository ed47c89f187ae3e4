package particle

import (
	"math"
	"math/rand"
)

const (
	// SunbeamSpin is the per-frame rotation of a sunbeam, in radians.
	SunbeamSpin = 0.01
	// RainAngle is the fall direction of every raindrop.
	RainAngle = math.Pi / 4
	// SnowDrift scales the horizontal sway of a snowflake.
	SnowDrift = 0.5
)

// Particle is one decorative element. Which fields matter depends on Kind.
type Particle struct {
	Kind Kind

	X, Y    float64
	Length  float64 // sunbeam, rain
	Size    float64 // cloud, snow
	Angle   float64 // sunbeam, rain
	Speed   float64
	Opacity float64 // sunbeam
	Density float64 // cloud
	Sway    float64 // snow, used as a phase offset
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Spawn creates a particle of kind k at a random position on a w×h canvas.
func Spawn(rng *rand.Rand, k Kind, w, h float64) Particle {
	switch k {
	case KindSunbeam:
		return Particle{
			Kind:    k,
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			Length:  between(rng, 100, 300),
			Angle:   rng.Float64() * 2 * math.Pi,
			Speed:   between(rng, 0.5, 1),
			Opacity: between(rng, 0.1, 0.3),
		}
	case KindCloud:
		return Particle{
			Kind:    k,
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h * 0.3,
			Size:    between(rng, 100, 250),
			Speed:   between(rng, 0.1, 0.3),
			Density: between(rng, 0.3, 0.7),
		}
	case KindRain:
		return Particle{
			Kind:   k,
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			Length: between(rng, 10, 30),
			Speed:  between(rng, 2, 5),
			Angle:  RainAngle,
		}
	case KindSnow:
		return Particle{
			Kind:  k,
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Size:  between(rng, 2, 6),
			Speed: between(rng, 0.5, 1.5),
			Sway:  between(rng, 0.5, 1.5),
		}
	default:
		return Particle{Kind: KindNone}
	}
}

// Step advances p by one frame. phase is the wall-clock phase in seconds,
// only snow reads it.
func (p *Particle) Step(rng *rand.Rand, w, h, phase float64) {
	switch p.Kind {
	case KindSunbeam:
		p.Angle += SunbeamSpin
	case KindCloud:
		p.X += p.Speed
		if p.X > w+p.Size {
			p.X = -p.Size
		}
	case KindRain:
		p.X += math.Cos(p.Angle) * p.Speed
		p.Y += math.Sin(p.Angle) * p.Speed
		if p.Y > h {
			p.Y = -p.Length
			p.X = rng.Float64() * w
		}
	case KindSnow:
		p.X += math.Sin(phase+p.Sway) * SnowDrift
		p.Y += p.Speed
		if p.Y > h {
			p.Y = -p.Size
			p.X = rng.Float64() * w
		}
	}
}

// Outside reports whether p has drifted more than margin past the left,
// right or bottom edge.
func (p *Particle) Outside(w, h, margin float64) bool {
	return p.Y > h+margin || p.X < -margin || p.X > w+margin
}
