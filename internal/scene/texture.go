package scene

import (
	"math"

	"github.com/iburimskiy/mood-ambience/internal/mood"
)

const (
	curveCount    = 5
	curveSegments = 10
	curveFlatten  = 6

	waveBands = 3
	waveStep  = 10

	latticeCols = 20
	latticeRows = 10
)

// drawTexture paints the cosmetic layer over the background: flowing
// curves on clear and snowy days, drifting sine bands and a breathing dot
// lattice. Nothing here survives the frame except the phase it reads.
func (r *Renderer) drawTexture(c Canvas, t float64, w mood.Weather, phase float64) {
	if w == mood.WeatherClear || w == mood.WeatherSnow {
		r.drawCurves(c, t, phase)
	}
	r.drawWaves(c, t, phase)
	r.drawLattice(c, t, phase)
}

func (r *Renderer) drawCurves(c Canvas, t, phase float64) {
	clr := white(0.1 * t)
	drift := phase * 0.05
	for i := 0; i < curveCount; i++ {
		seed := float64(i) * 7.3
		startX := r.noise.Eval2(seed, drift) * r.w
		startY := r.noise.Eval2(seed+101, drift) * r.h * 0.5

		pts := r.scratch[:0]
		pts = append(pts, Point{X: startX, Y: startY})
		for j := 0; j < curveSegments; j++ {
			fj := float64(j)
			ctrl := Point{
				X: startX + math.Sin(fj)*50,
				Y: startY + fj*20 + math.Cos(fj)*30,
			}
			end := Point{
				X: startX + math.Sin(fj+1)*50,
				Y: startY + (fj+1)*20 + math.Cos(fj+1)*30,
			}
			pts = quadTo(pts, ctrl, end, curveFlatten)
		}
		c.StrokePolyline(pts, 1, clr)
		r.scratch = pts
	}
}

func (r *Renderer) drawWaves(c Canvas, t, phase float64) {
	clr := white(0.05 + 0.05*t)
	for i := 0; i < waveBands; i++ {
		fi := float64(i)
		amplitude := 30 + fi*20
		frequency := 0.01 + fi*0.005
		yOffset := 200 + fi*100

		pts := r.scratch[:0]
		for x := 0.0; x < r.w; x += waveStep {
			pts = append(pts, Point{X: x, Y: yOffset + math.Sin(x*frequency+phase)*amplitude})
		}
		c.StrokePolyline(pts, 2, clr)
		r.scratch = pts
	}
}

func (r *Renderer) drawLattice(c Canvas, t, phase float64) {
	clr := white(0.1 * t)
	for i := 0; i < latticeCols; i++ {
		for j := 0; j < latticeRows; j++ {
			fi, fj := float64(i), float64(j)
			x := fi/latticeCols*r.w + math.Sin(phase+fj)*10
			y := fj/latticeRows*r.h + math.Cos(phase+fi)*10
			radius := 2 + math.Sin(phase*2+fi+fj)*1.5
			c.FillCircle(x, y, radius, clr)
		}
	}
}
