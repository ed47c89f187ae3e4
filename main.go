package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mood-ambience/internal/ambience"
	"github.com/iburimskiy/mood-ambience/internal/broadcast"
	"github.com/iburimskiy/mood-ambience/internal/config"
	"github.com/iburimskiy/mood-ambience/internal/game"
	"github.com/iburimskiy/mood-ambience/internal/layout"
	"github.com/iburimskiy/mood-ambience/internal/mood"
	"github.com/iburimskiy/mood-ambience/internal/scene"
	"github.com/iburimskiy/mood-ambience/internal/snapshot"
	"github.com/iburimskiy/mood-ambience/internal/store"
)

func main() {
	opts, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: opts.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := run(opts); err != nil {
		slog.Error("mood ambience failed", "error", err)
		if !opts.Headless {
			_ = zenity.Error(err.Error(), zenity.Title("Mood Ambience"))
		}
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	rings := &layout.Rings{}
	ctrl := mood.NewController(rings)
	ctrl.AddSink(mood.LogSink{})

	renderer, err := scene.NewRenderer(ctrl, opts.Width, opts.Height, opts.Seed)
	if err != nil {
		return fmt.Errorf("set up mood canvas: %w", err)
	}
	ctrl.AddListener(renderer)

	if opts.MQTTBroker != "" {
		client, err := broadcast.Connect(opts.MQTTBroker, "mood-ambience")
		if err != nil {
			slog.Warn("style broadcast disabled", "error", err)
		} else {
			defer client.Disconnect(250)
			b := broadcast.New(client, opts.MQTTTopic)
			defer b.Close()
			ctrl.AddSink(b)
			slog.Info("broadcasting style", "broker", opts.MQTTBroker, "topic", b.Topic())
		}
	}

	var sound game.Muter
	if opts.Sound && !opts.Headless {
		s, err := ambience.Start(opts.Seed)
		if err != nil {
			slog.Warn("soundscape disabled", "error", err)
		} else {
			defer s.Close()
			ctrl.AddSink(s)
			sound = s
		}
	}

	var g *game.Game
	if !opts.Headless {
		ebiten.SetWindowSize(opts.Width, opts.Height)
		ebiten.SetWindowTitle("Mood Ambience")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetTPS(config.TPS)
		g = game.New(ctrl, rings, renderer, sound)
	}

	restored := false
	if opts.StorePath != "" {
		st, err := store.Open(opts.StorePath)
		if err != nil {
			slog.Warn("mood store disabled", "path", opts.StorePath, "error", err)
		} else {
			defer st.Close()
			defer func() {
				if err := st.SaveMood(ctrl.State()); err != nil {
					slog.Warn("save mood", "error", err)
				}
			}()
			t, w, ok, err := st.LoadMood()
			if err != nil {
				slog.Warn("load mood", "error", err)
			}
			if ok {
				ctrl.Restore(t, w)
				restored = true
				slog.Info("mood restored", "time", t, "weather", w.String())
			}
		}
	}
	if !restored {
		ctrl.Publish()
	}

	if opts.Headless {
		return runHeadless(opts, renderer)
	}

	slog.Info("mood ambience started", "width", opts.Width, "height", opts.Height, "mood", ctrl.Display().Label)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runHeadless(opts config.Options, renderer *scene.Renderer) error {
	canvas, err := snapshot.NewCanvas(opts.Width, opts.Height)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := scene.NewLoop(renderer)
	loop.StopAfter(opts.Frames)

	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	start := time.Now()
	if err := loop.Run(ctx, canvas, ticker.C); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("headless render finished",
		"frames", loop.Frames(),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"particles", renderer.Pool().Len(),
		"kind", renderer.Pool().Kind().String(),
	)
	return canvas.SavePNG(opts.Out)
}
