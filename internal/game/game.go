// Package game hosts the mood canvas in an ebiten window.
package game

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mood-ambience/internal/layout"
	"github.com/iburimskiy/mood-ambience/internal/mood"
	"github.com/iburimskiy/mood-ambience/internal/scene"
	"github.com/iburimskiy/mood-ambience/internal/snapshot"
)

// Muter toggles an audio layer on and off.
type Muter interface {
	ToggleMute() bool
}

// Game implements ebiten.Game on top of a mood controller and renderer.
type Game struct {
	ctrl     *mood.Controller
	renderer *scene.Renderer
	loop     *scene.Loop
	rings    *layout.Rings
	hud      *hud
	canvas   screenCanvas
	sound    Muter

	pointer pointerState

	width, height int
	lastErr       error
}

// New builds a game around ctrl, whose layout must be rings, and r. The
// HUD is registered as a style sink.
func New(ctrl *mood.Controller, rings *layout.Rings, r *scene.Renderer, sound Muter) *Game {
	w, h := r.Size()
	g := &Game{
		ctrl:     ctrl,
		renderer: r,
		loop:     scene.NewLoop(r),
		rings:    rings,
		hud:      newHUD(rings),
		sound:    sound,
		width:    w,
		height:   h,
	}
	rings.Resize(w, h)
	ctrl.AddSink(g.hud)
	return g
}

// Stop ends the render loop; the window closes on the next update.
func (g *Game) Stop() { g.loop.Stop() }

func (g *Game) Update() error {
	g.handlePointer()
	if err := g.handleKeys(); err != nil {
		return err
	}

	if err := g.loop.Advance(time.Now()); errors.Is(err, scene.ErrStopped) {
		return ebiten.Termination
	}
	g.hud.update(g.ctrl.State())
	return nil
}

var (
	weatherKeys = map[ebiten.Key]string{
		ebiten.Key1: "clear",
		ebiten.Key2: "cloudy",
		ebiten.Key3: "rain",
		ebiten.Key4: "snow",
	}
	timeKeys = map[ebiten.Key]string{
		ebiten.KeyN: "night",
		ebiten.KeyD: "dawn",
		ebiten.KeyO: "noon",
		ebiten.KeyE: "dusk",
	}
)

func (g *Game) handleKeys() error {
	for k, name := range weatherKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctrl.SetWeatherByPreset(name)
		}
	}
	for k, name := range timeKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctrl.SetTimeByPreset(name)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		muted := g.sound.ToggleMute()
		slog.Info("soundscape", "muted", muted)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.loop.Stop()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) saveSnapshot() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Mood Snapshot"),
		zenity.Filename("mood.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			g.lastErr = err
			slog.Error("snapshot dialog", "error", err)
		}
		return
	}
	if err := snapshot.Save(g.renderer, g.loop.Phase(), path); err != nil {
		g.lastErr = err
		slog.Error("save snapshot", "error", err)
		return
	}
	g.lastErr = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Paint(g.canvas.bind(screen))
	g.hud.draw(screen, g.ctrl)

	status := "Drag the rings: outer = time, inner = weather | 1-4 weather, N/D/O/E time, S save, Esc quit"
	if g.sound != nil {
		status += ", M mute"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.renderer.Resize(outsideWidth, outsideHeight)
		g.rings.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
