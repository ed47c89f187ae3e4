// Package ambience plays a weather-dependent noise bed under the canvas.
package ambience

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/mood-ambience/internal/mood"
)

// SampleRate is the output rate of the soundscape.
const SampleRate = beep.SampleRate(44100)

// bed describes the noise for one weather code: gain and a one-pole
// low-pass coefficient (smaller is darker).
type bed struct {
	gain   float64
	smooth float64
}

var beds = map[mood.Weather]bed{
	mood.WeatherClear:  {gain: 0.02, smooth: 0.02},
	mood.WeatherCloudy: {gain: 0.06, smooth: 0.01},
	mood.WeatherRain:   {gain: 0.25, smooth: 0.35},
	mood.WeatherSnow:   {gain: 0.04, smooth: 0.005},
}

// Noise is a filtered noise streamer whose character follows the weather.
// It is not safe for concurrent use; once it is playing, Retune must be
// called under speaker.Lock.
type Noise struct {
	rng    *rand.Rand
	target bed
	cur    bed
	last   [2]float64
}

// NewNoise returns a noise bed tuned for clear weather.
func NewNoise(seed int64) *Noise {
	b := beds[mood.WeatherClear]
	return &Noise{rng: rand.New(rand.NewSource(seed)), target: b, cur: b}
}

// Retune moves the bed toward the sound of w.
func (n *Noise) Retune(w mood.Weather) {
	b, ok := beds[w]
	if !ok {
		return
	}
	n.target = b
}

// Gain returns the gain the stream is currently gliding toward.
func (n *Noise) Gain() float64 {
	return n.target.gain
}

// glide is the per-sample approach rate toward a new bed.
const glide = 0.0005

func (n *Noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n.cur.gain += (n.target.gain - n.cur.gain) * glide
		n.cur.smooth += (n.target.smooth - n.cur.smooth) * glide
		for ch := 0; ch < 2; ch++ {
			white := n.rng.Float64()*2 - 1
			n.last[ch] += (white - n.last[ch]) * n.cur.smooth
			samples[i][ch] = math.Max(-1, math.Min(1, n.last[ch]*n.cur.gain*4))
		}
	}
	return len(samples), true
}

func (n *Noise) Err() error { return nil }

// Soundscape plays a Noise bed through the speaker and follows the mood.
type Soundscape struct {
	noise  *Noise
	volume *effects.Volume
	ctrl   *beep.Ctrl
}

// Start initializes the speaker and begins playback.
func Start(seed int64) (*Soundscape, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := newSoundscape(seed)
	speaker.Play(s.ctrl)
	return s, nil
}

func newSoundscape(seed int64) *Soundscape {
	n := NewNoise(seed)
	vol := &effects.Volume{Streamer: n, Base: 2}
	return &Soundscape{
		noise:  n,
		volume: vol,
		ctrl:   &beep.Ctrl{Streamer: vol},
	}
}

// Level maps mood lightness to a volume in octaves: a noon sky plays at
// full level and night drops by one octave.
func Level(st mood.Style) float64 {
	l := math.Max(0, math.Min(1, st.Lightness))
	return (l - 1) * 1.25
}

// PublishStyle retunes the bed for the published weather and sets the
// volume from the published lightness.
func (s *Soundscape) PublishStyle(st mood.Style) {
	speaker.Lock()
	defer speaker.Unlock()
	s.noise.Retune(st.Weather)
	s.volume.Volume = Level(st)
}

// ToggleMute silences or restores the bed.
func (s *Soundscape) ToggleMute() bool {
	speaker.Lock()
	defer speaker.Unlock()
	s.ctrl.Paused = !s.ctrl.Paused
	return s.ctrl.Paused
}

// Close stops playback.
func (s *Soundscape) Close() {
	speaker.Clear()
}
