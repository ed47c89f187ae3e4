package mood

import (
	"log/slog"
	"strconv"
)

// Style is the derived parameter set published after every mood change.
// It is the only channel from the mood to whatever styles the page.
type Style struct {
	Lightness  float64 `json:"lightness"`
	Saturation float64 `json:"saturation"`
	Contrast   float64 `json:"contrast"`
	HueRotate  float64 `json:"hue_rotate"` // degrees
	Blur       float64 `json:"blur"`       // pixels
	Time       float64 `json:"time"`
	Weather    Weather `json:"weather"`
}

// StyleOf derives the published parameters from a mood state.
func StyleOf(s State) Style {
	b := Nearest(s.Time)
	p := s.Weather.Profile()
	return Style{
		Lightness:  b.Light,
		Saturation: p.Saturation,
		Contrast:   1 + (1-b.Light)*0.5,
		HueRotate:  b.Hue,
		Blur:       p.Blur,
		Time:       s.Time,
		Weather:    s.Weather,
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Vars renders the style as custom-property style name/value pairs.
func (s Style) Vars() map[string]string {
	return map[string]string{
		"--mood-lightness":  fmtFloat(s.Lightness),
		"--mood-saturation": fmtFloat(s.Saturation),
		"--mood-contrast":   fmtFloat(s.Contrast),
		"--mood-hue-rotate": fmtFloat(s.HueRotate) + "deg",
		"--mood-blur":       fmtFloat(s.Blur) + "px",
		"--time-of-day":     fmtFloat(s.Time),
		"--weather-type":    strconv.Itoa(int(s.Weather)),
	}
}

// StyleSink receives every published Style.
type StyleSink interface {
	PublishStyle(Style)
}

// StyleSinkFunc adapts a function to StyleSink.
type StyleSinkFunc func(Style)

func (f StyleSinkFunc) PublishStyle(s Style) { f(s) }

// LogSink writes each published style at debug level.
type LogSink struct {
	Logger *slog.Logger
}

func (l LogSink) PublishStyle(s Style) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("mood style",
		"lightness", s.Lightness,
		"saturation", s.Saturation,
		"contrast", s.Contrast,
		"hue_rotate", s.HueRotate,
		"blur", s.Blur,
		"time", s.Time,
		"weather", int(s.Weather),
	)
}
