package particle

import (
	"math"
	"math/rand"
	"testing"
)

func newTestPool() *Pool {
	return NewPool(rand.New(rand.NewSource(7)), 800, 600)
}

func TestGenerateTargetCounts(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindSunbeam, 5},
		{KindCloud, 3},
		{KindRain, 50},
		{KindSnow, 30},
		{KindNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := newTestPool()
			p.Generate(tt.kind)
			if p.Len() != tt.want {
				t.Fatalf("Generate(%v) produced %d particles, want %d", tt.kind, p.Len(), tt.want)
			}
			for i, pt := range p.Particles() {
				if pt.Kind != tt.kind {
					t.Errorf("particle %d has kind %v, want %v", i, pt.Kind, tt.kind)
				}
			}
		})
	}
}

func TestSpawnRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := Spawn(rng, KindSunbeam, 800, 600)
		if s.Length < 100 || s.Length > 300 || s.Opacity < 0.1 || s.Opacity > 0.3 {
			t.Fatalf("sunbeam out of range: %+v", s)
		}
		c := Spawn(rng, KindCloud, 800, 600)
		if c.Y < 0 || c.Y > 600*0.3 || c.Size < 100 || c.Size > 250 {
			t.Fatalf("cloud out of range: %+v", c)
		}
		r := Spawn(rng, KindRain, 800, 600)
		if r.Angle != RainAngle || r.Speed < 2 || r.Speed > 5 {
			t.Fatalf("rain out of range: %+v", r)
		}
		sn := Spawn(rng, KindSnow, 800, 600)
		if sn.Size < 2 || sn.Size > 6 || sn.Sway < 0.5 || sn.Sway > 1.5 {
			t.Fatalf("snow out of range: %+v", sn)
		}
	}
}

func TestSunbeamRotatesInPlace(t *testing.T) {
	p := Particle{Kind: KindSunbeam, X: 10, Y: 20, Angle: 1}
	p.Step(rand.New(rand.NewSource(1)), 800, 600, 0)
	if p.X != 10 || p.Y != 20 {
		t.Errorf("sunbeam moved to (%v,%v)", p.X, p.Y)
	}
	if math.Abs(p.Angle-(1+SunbeamSpin)) > 1e-12 {
		t.Errorf("angle = %v, want %v", p.Angle, 1+SunbeamSpin)
	}
}

func TestCloudWrapsAtRightEdge(t *testing.T) {
	p := Particle{Kind: KindCloud, X: 949.9, Y: 50, Size: 150, Speed: 0.2}
	p.Step(rand.New(rand.NewSource(1)), 800, 600, 0)
	if p.X != -150 {
		t.Fatalf("cloud X = %v, want wrap to -150", p.X)
	}
}

func TestRainResetsAtBottom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := Particle{Kind: KindRain, X: 100, Y: 599, Length: 20, Speed: 4, Angle: RainAngle}
	p.Step(rng, 800, 600, 0)
	if p.Y != -20 {
		t.Fatalf("rain Y = %v, want -20", p.Y)
	}
	if p.X < 0 || p.X > 800 {
		t.Fatalf("rain X = %v, want inside canvas", p.X)
	}
}

func TestSnowFallsAndSways(t *testing.T) {
	p := Particle{Kind: KindSnow, X: 100, Y: 10, Size: 3, Speed: 1, Sway: 1}
	p.Step(rand.New(rand.NewSource(1)), 800, 600, 0.5)
	wantX := 100 + math.Sin(1.5)*SnowDrift
	if math.Abs(p.X-wantX) > 1e-12 || p.Y != 11 {
		t.Fatalf("snow at (%v,%v), want (%v,11)", p.X, p.Y, wantX)
	}
}

func TestCullDropsOffCanvasButKeepsClouds(t *testing.T) {
	p := newTestPool()
	p.kind = KindRain
	p.particles = []Particle{
		{Kind: KindRain, X: 10, Y: 10},
		{Kind: KindRain, X: 901, Y: 10},
		{Kind: KindRain, X: -101, Y: 10},
		{Kind: KindRain, X: 10, Y: 701},
		{Kind: KindCloud, X: 1000, Y: 10},
	}

	if removed := p.Cull(); removed != 3 {
		t.Fatalf("Cull removed %d, want 3", removed)
	}
	if p.Len() != 2 || p.Particles()[0].X != 10 || p.Particles()[1].Kind != KindCloud {
		t.Fatalf("unexpected survivors: %+v", p.Particles())
	}
}

func TestReplenishRegeneratesWholePool(t *testing.T) {
	p := newTestPool()
	p.Generate(KindSnow)
	p.particles = p.particles[:12]

	if !p.Replenish() {
		t.Fatal("Replenish did not regenerate an undersized pool")
	}
	if p.Len() != KindSnow.Target() {
		t.Fatalf("pool size = %d, want %d", p.Len(), KindSnow.Target())
	}
	if p.Replenish() {
		t.Fatal("Replenish regenerated a full pool")
	}
}

func TestPoolNeverGrowsPastTarget(t *testing.T) {
	for _, k := range []Kind{KindSunbeam, KindCloud, KindRain, KindSnow} {
		p := newTestPool()
		p.Generate(k)
		for frame := 0; frame < 5000; frame++ {
			p.Update(float64(frame) / 60)
			p.Cull()
			p.Replenish()
			if p.Len() > k.Target() {
				t.Fatalf("%v pool grew to %d at frame %d", k, p.Len(), frame)
			}
		}
		if p.Len() != k.Target() {
			t.Errorf("%v pool settled at %d, want %d", k, p.Len(), k.Target())
		}
	}
}

func TestResizeCullsStaleParticles(t *testing.T) {
	p := newTestPool()
	p.Generate(KindSunbeam)
	p.Resize(50, 50)
	p.Update(0)
	p.Cull()
	p.Replenish()
	for _, pt := range p.Particles() {
		if pt.Outside(50, 50, CullMargin) {
			t.Fatalf("stale sunbeam survived resize: %+v", pt)
		}
	}
}
