package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Options are the run-time settings taken from flags and MOOD_* variables.
// Flags win over the environment.
type Options struct {
	Width, Height int

	Headless bool
	Frames   uint64
	Out      string
	Seed     int64

	StorePath string

	MQTTBroker string
	MQTTTopic  string

	Sound    bool
	LogLevel slog.Level
}

// Default returns the options used when nothing is configured.
func Default() Options {
	return Options{
		Width:     WindowWidth,
		Height:    WindowHeight,
		Frames:    120,
		Out:       "mood.png",
		Seed:      42,
		MQTTTopic: "mood",
		LogLevel:  slog.LevelInfo,
	}
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("ignoring malformed environment value", "key", key, "value", v)
	}
	return def
}

func envUint(key string, def uint64) uint64 {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
		slog.Warn("ignoring malformed environment value", "key", key, "value", v)
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		slog.Warn("ignoring malformed environment value", "key", key, "value", v)
	}
	return def
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Load parses args (without the program name) on top of the environment.
func Load(args []string) (Options, error) {
	o := Default()

	fs := flag.NewFlagSet("mood", flag.ContinueOnError)
	fs.IntVar(&o.Width, "width", envInt("MOOD_WIDTH", o.Width), "canvas width in pixels")
	fs.IntVar(&o.Height, "height", envInt("MOOD_HEIGHT", o.Height), "canvas height in pixels")
	fs.BoolVar(&o.Headless, "headless", envBool("MOOD_HEADLESS", false), "render without a window and write a PNG")
	fs.Uint64Var(&o.Frames, "frames", envUint("MOOD_FRAMES", o.Frames), "frames to render in headless mode")
	fs.StringVar(&o.Out, "out", envString("MOOD_OUT", o.Out), "headless output PNG")
	fs.Int64Var(&o.Seed, "seed", int64(envInt("MOOD_SEED", int(o.Seed))), "random seed for particles and texture")
	fs.StringVar(&o.StorePath, "store", envString("MOOD_STORE", ""), "SQLite file remembering the last mood (empty disables)")
	fs.StringVar(&o.MQTTBroker, "mqtt-broker", envString("MOOD_MQTT_BROKER", ""), "MQTT broker URL for style broadcasts (empty disables)")
	fs.StringVar(&o.MQTTTopic, "mqtt-topic", envString("MOOD_MQTT_TOPIC", o.MQTTTopic), "MQTT topic prefix")
	fs.BoolVar(&o.Sound, "sound", envBool("MOOD_SOUND", false), "play the weather soundscape")
	level := fs.String("log-level", envString("MOOD_LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	l, err := ParseLevel(*level)
	if err != nil {
		return o, err
	}
	o.LogLevel = l

	if o.Width <= 0 || o.Height <= 0 {
		return o, fmt.Errorf("canvas size %dx%d must be positive", o.Width, o.Height)
	}
	if o.Headless && o.Frames == 0 {
		return o, fmt.Errorf("headless mode needs at least one frame")
	}
	return o, nil
}
