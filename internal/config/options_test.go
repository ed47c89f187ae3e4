package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	o, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.Width != WindowWidth || o.Height != WindowHeight || o.Headless || o.LogLevel != slog.LevelInfo {
		t.Fatalf("defaults = %+v", o)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MOOD_WIDTH", "300")
	t.Setenv("MOOD_MQTT_BROKER", "tcp://broker:1883")

	o, err := Load([]string{"-width", "640", "-headless", "-frames", "10", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.Width != 640 {
		t.Errorf("width = %d, want flag value 640", o.Width)
	}
	if o.MQTTBroker != "tcp://broker:1883" {
		t.Errorf("broker = %q, want env value", o.MQTTBroker)
	}
	if !o.Headless || o.Frames != 10 || o.LogLevel != slog.LevelDebug {
		t.Errorf("options = %+v", o)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"-width", "0"}},
		{"negative height", []string{"-height", "-5"}},
		{"headless without frames", []string{"-headless", "-frames", "0"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"unknown flag", []string{"-colour", "red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); err == nil {
				t.Fatalf("Load(%v) succeeded", tt.args)
			}
		})
	}
}

func TestMalformedEnvFallsBack(t *testing.T) {
	t.Setenv("MOOD_HEIGHT", "tall")
	o, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.Height != WindowHeight {
		t.Fatalf("height = %d, want default", o.Height)
	}
}

func TestNegativeFramesRejected(t *testing.T) {
	t.Setenv("MOOD_FRAMES", "-1")
	o, err := Load([]string{"-headless"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if o.Frames != Default().Frames {
		t.Fatalf("frames = %d, want default %d", o.Frames, Default().Frames)
	}

	if _, err := Load([]string{"-headless", "-frames", "-1"}); err == nil {
		t.Fatal("negative -frames accepted")
	}
}
