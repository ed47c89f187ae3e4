package particle

import "math/rand"

// CullMargin is how far past an edge a particle may travel before it is dropped.
const CullMargin = 100

// Pool owns the live particles of a single kind. It is not safe for
// concurrent use; the render loop is its only owner.
type Pool struct {
	rng       *rand.Rand
	kind      Kind
	particles []Particle
	w, h      float64
}

// NewPool returns an empty pool for a w×h canvas.
func NewPool(rng *rand.Rand, w, h float64) *Pool {
	return &Pool{rng: rng, w: w, h: h}
}

func (p *Pool) Kind() Kind { return p.kind }

func (p *Pool) Len() int { return len(p.particles) }

// Particles exposes the live slice for drawing. Callers must not retain it
// across frames.
func (p *Pool) Particles() []Particle { return p.particles }

// Resize updates the bounds used for spawning, wrapping and culling.
func (p *Pool) Resize(w, h float64) {
	p.w, p.h = w, h
}

// Generate replaces the whole population with Target fresh particles of kind k.
func (p *Pool) Generate(k Kind) {
	p.kind = k
	n := k.Target()
	if cap(p.particles) < n {
		p.particles = make([]Particle, 0, n)
	}
	p.particles = p.particles[:0]
	for i := 0; i < n; i++ {
		p.particles = append(p.particles, Spawn(p.rng, k, p.w, p.h))
	}
}

// Update advances every particle by one frame.
func (p *Pool) Update(phase float64) {
	for i := range p.particles {
		p.particles[i].Step(p.rng, p.w, p.h, phase)
	}
}

// Cull drops particles that left the canvas and returns how many were removed.
// Survivors are compacted into the same backing array.
func (p *Pool) Cull() int {
	kept := p.particles[:0]
	for _, pt := range p.particles {
		if !pt.Kind.Wraps() && pt.Outside(p.w, p.h, CullMargin) {
			continue
		}
		kept = append(kept, pt)
	}
	removed := len(p.particles) - len(kept)
	p.particles = kept
	return removed
}

// Replenish regenerates the full population when it has fallen below target.
// It reports whether a regeneration happened.
func (p *Pool) Replenish() bool {
	if len(p.particles) >= p.kind.Target() {
		return false
	}
	p.Generate(p.kind)
	return true
}
