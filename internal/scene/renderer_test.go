package scene

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/mood-ambience/internal/mood"
	"github.com/iburimskiy/mood-ambience/internal/particle"
)

type op struct {
	name  string
	color color.Color
	from  color.Color
	n     int
}

// recordCanvas keeps a log of draw calls instead of pixels.
type recordCanvas struct {
	w, h int
	ops  []op
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }
func (c *recordCanvas) Clear()           { c.ops = append(c.ops, op{name: "clear"}) }
func (c *recordCanvas) FillGradient(_, _, _, _ float64, from, to color.Color) {
	c.ops = append(c.ops, op{name: "gradient", from: from, color: to})
}
func (c *recordCanvas) StrokeLine(_, _, _, _, _ float64, clr color.Color) {
	c.ops = append(c.ops, op{name: "line", color: clr})
}
func (c *recordCanvas) StrokePolyline(pts []Point, _ float64, clr color.Color) {
	c.ops = append(c.ops, op{name: "polyline", color: clr, n: len(pts)})
}
func (c *recordCanvas) FillCircle(_, _, _ float64, clr color.Color) {
	c.ops = append(c.ops, op{name: "circle", color: clr})
}

func (c *recordCanvas) count(name string) int {
	n := 0
	for _, o := range c.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

func newScene(t *testing.T, weather string) (*mood.Controller, *Renderer, *recordCanvas) {
	t.Helper()
	ctrl := mood.NewController(nil)
	r, err := NewRenderer(ctrl, 800, 600, 1)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	ctrl.AddListener(r)
	ctrl.SetWeatherByPreset(weather)
	return ctrl, r, &recordCanvas{w: 800, h: 600}
}

func TestNewRendererRejectsEmptySurface(t *testing.T) {
	ctrl := mood.NewController(nil)
	for _, sz := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		if _, err := NewRenderer(ctrl, sz[0], sz[1], 1); !errors.Is(err, ErrCanvasUnavailable) {
			t.Errorf("NewRenderer(%d,%d) error = %v, want ErrCanvasUnavailable", sz[0], sz[1], err)
		}
	}
}

func TestFrameStartsWithClearAndGradient(t *testing.T) {
	ctrl, r, c := newScene(t, "cloudy")
	ctrl.SetTimeByPreset("dawn")
	r.Frame(c, 0)

	if c.ops[0].name != "clear" || c.ops[1].name != "gradient" {
		t.Fatalf("frame began with %s, %s", c.ops[0].name, c.ops[1].name)
	}
	from := c.ops[1].from.(color.NRGBA)
	to := c.ops[1].color.(color.NRGBA)
	if from != (color.NRGBA{R: 0x4a, G: 0x4a, B: 0x8c, A: 255}) {
		t.Fatalf("gradient starts at %v, want dawn #4a4a8c", from)
	}
	if to.R <= from.R || to.G <= from.G || to.B <= from.B {
		t.Fatalf("gradient end %v is not lighter than %v", to, from)
	}
}

func TestTextureCurvesOnlyOnClearAndSnow(t *testing.T) {
	tests := []struct {
		weather   string
		polylines int
	}{
		{"clear", curveCount + waveBands},
		{"cloudy", waveBands},
		{"rain", waveBands},
		{"snow", curveCount + waveBands},
	}
	for _, tt := range tests {
		t.Run(tt.weather, func(t *testing.T) {
			_, r, c := newScene(t, tt.weather)
			r.Paint(c, 1.5)
			if got := c.count("polyline"); got != tt.polylines {
				t.Errorf("polylines = %d, want %d", got, tt.polylines)
			}
		})
	}
}

func TestRainFrameDrawsFiftyDrops(t *testing.T) {
	_, r, c := newScene(t, "rain")

	if r.Pool().Len() != 50 {
		t.Fatalf("pool has %d particles, want 50", r.Pool().Len())
	}
	for _, p := range r.Pool().Particles() {
		if p.Kind != particle.KindRain {
			t.Fatalf("pool holds %v", p.Kind)
		}
	}

	r.Paint(c, 0)
	if got := c.count("line"); got != 50 {
		t.Errorf("drew %d rain lines, want 50", got)
	}
	if got := c.count("circle"); got != latticeCols*latticeRows {
		t.Errorf("drew %d circles, want %d lattice dots", got, latticeCols*latticeRows)
	}
}

func TestCloudsDrawThreeLobes(t *testing.T) {
	_, r, c := newScene(t, "cloudy")
	r.Paint(c, 0)
	if got := c.count("circle"); got != latticeCols*latticeRows+3*3 {
		t.Errorf("drew %d circles, want lattice + 9 cloud lobes", got)
	}
}

func TestResizeKeepsPoolBounded(t *testing.T) {
	_, r, c := newScene(t, "snow")
	for i := 0; i < 600; i++ {
		if i == 300 {
			r.Resize(200, 150)
		}
		r.Frame(c, float64(i)/60)
		if r.Pool().Len() > particle.KindSnow.Target() {
			t.Fatalf("pool grew to %d", r.Pool().Len())
		}
	}
	if w, h := r.Size(); w != 200 || h != 150 {
		t.Fatalf("Size = %dx%d after resize", w, h)
	}
}

func TestLighten(t *testing.T) {
	black := colorful.Color{}
	got := Lighten(black, GradientLighten)
	if math.Abs(got.R-0.3) > 1e-9 || math.Abs(got.G-0.3) > 1e-9 || math.Abs(got.B-0.3) > 1e-9 {
		t.Fatalf("Lighten(black) = %v", got)
	}
	w := Lighten(colorful.Color{R: 1, G: 1, B: 1}, 0.3)
	if w.R != 1 || w.G != 1 || w.B != 1 {
		t.Fatalf("Lighten(white) = %v", w)
	}
}

func TestGradientAt(t *testing.T) {
	tests := []struct {
		x, y float64
		want float64
	}{
		{0, 0, 0},
		{100, 100, 1},
		{50, 50, 0.5},
		{100, 0, 0.5},
		{-20, -20, 0},
		{200, 200, 1},
	}
	for _, tt := range tests {
		if got := GradientAt(tt.x, tt.y, 0, 0, 100, 100); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("GradientAt(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLoopStopsAfterLimit(t *testing.T) {
	_, r, c := newScene(t, "snow")
	l := NewLoop(r)
	l.StopAfter(3)

	ticks := make(chan time.Time, 10)
	for i := 0; i < 10; i++ {
		ticks <- time.Now()
	}
	if err := l.Run(context.Background(), c, ticks); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Frames() != 3 || l.Running() {
		t.Fatalf("frames=%d running=%v, want 3 and stopped", l.Frames(), l.Running())
	}
	if err := l.Advance(time.Now()); !errors.Is(err, ErrStopped) {
		t.Fatalf("Advance after stop = %v, want ErrStopped", err)
	}
}

func TestLoopHonoursContext(t *testing.T) {
	_, r, c := newScene(t, "clear")
	l := NewLoop(r)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.Run(ctx, c, make(chan time.Time)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
	if l.Running() {
		t.Fatal("loop still running after cancel")
	}
}

func TestLoopAdvanceAndPaint(t *testing.T) {
	_, r, c := newScene(t, "clear")
	l := NewLoop(r)
	start := time.Now()
	if err := l.Advance(start.Add(2 * time.Second)); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if l.Phase() < 2 {
		t.Fatalf("phase = %v, want >= 2", l.Phase())
	}
	l.Paint(c)
	if c.count("line") != particle.KindSunbeam.Target() {
		t.Fatalf("drew %d sunbeams", c.count("line"))
	}
	l.Stop()
	l.Stop()
	if l.Running() {
		t.Fatal("Stop did not stop")
	}
}
