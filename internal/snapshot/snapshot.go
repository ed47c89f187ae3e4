package snapshot

import (
	"log/slog"

	"github.com/iburimskiy/mood-ambience/internal/scene"
)

// Painter draws a frame without advancing it.
type Painter interface {
	Paint(c scene.Canvas, phase float64)
	Size() (int, int)
}

// Save paints the current frame of p at phase into a fresh canvas and
// writes it to path.
func Save(p Painter, phase float64, path string) error {
	w, h := p.Size()
	c, err := NewCanvas(w, h)
	if err != nil {
		return err
	}
	p.Paint(c, phase)
	if err := c.SavePNG(path); err != nil {
		return err
	}
	slog.Info("snapshot saved", "path", path, "width", w, "height", h)
	return nil
}
