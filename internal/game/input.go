package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/mood-ambience/internal/mood"
)

// pointerState tracks the one pointer, mouse or touch, that owns the
// current press.
type pointerState struct {
	down    bool
	touch   bool
	touchID ebiten.TouchID
	last    mood.Point

	touchIDs []ebiten.TouchID
}

func cursor() mood.Point {
	x, y := ebiten.CursorPosition()
	return mood.Point{X: float64(x), Y: float64(y)}
}

func touchAt(id ebiten.TouchID) mood.Point {
	x, y := ebiten.TouchPosition(id)
	return mood.Point{X: float64(x), Y: float64(y)}
}

func (g *Game) handlePointer() {
	p := &g.pointer
	mx, my := ebiten.CursorPosition()
	g.hud.buttonHovered = g.hud.overButton(mx, my)

	if !p.down {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.down, p.touch = true, false
			g.press(cursor())
		} else if p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0]); len(p.touchIDs) > 0 {
			p.down, p.touch, p.touchID = true, true, p.touchIDs[0]
			g.press(touchAt(p.touchID))
		}
		return
	}

	if p.touch {
		if inpututil.IsTouchJustReleased(p.touchID) {
			g.release(p.last)
			return
		}
		g.move(touchAt(p.touchID))
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.release(cursor())
		return
	}
	g.move(cursor())
}

// press routes a new press to the button, a preset, or a ring drag.
func (g *Game) press(at mood.Point) {
	g.pointer.last = at
	if g.hud.overButton(int(at.X), int(at.Y)) {
		g.hud.buttonPressed = true
		return
	}
	if name, ok := g.rings.Marker(at); ok {
		g.ctrl.SetTimeByPreset(name)
		return
	}
	if name, ok := g.rings.Icon(at); ok {
		g.ctrl.SetWeatherByPreset(name)
		return
	}
	if ring := g.rings.Hit(at); ring != mood.RingNone {
		g.ctrl.StartDrag(ring, at)
	}
}

// move forwards pointer motion to the controller. Holding still is not a
// move: every HandleDrag re-applies the full rotation since the press.
func (g *Game) move(at mood.Point) {
	if at == g.pointer.last {
		return
	}
	g.pointer.last = at
	g.ctrl.HandleDrag(at)
}

func (g *Game) release(at mood.Point) {
	g.pointer.down = false
	g.ctrl.StopDrag()
	if g.hud.buttonPressed && g.hud.overButton(int(at.X), int(at.Y)) {
		g.saveSnapshot()
	}
	g.hud.buttonPressed = false
}
