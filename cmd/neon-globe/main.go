package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"

	"github.com/lixenwraith/neon-globe/app"
	"github.com/lixenwraith/neon-globe/audio"
	"github.com/lixenwraith/neon-globe/config"
	"github.com/lixenwraith/neon-globe/core"
	"github.com/lixenwraith/neon-globe/logger"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config file")
	envFlag    = flag.String("env", ".env", "Path to .env file, ignored if missing")
	seedFlag   = flag.Int64("seed", 0, "Random seed for arc placement, 0 uses the clock")
	fpsFlag    = flag.Int("fps", 0, "Frames per second, overrides config")
	logFlag    = flag.String("log", "", "Log file path, overrides config")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging")
	audioFlag  = flag.Bool("audio", false, "Play a chime when an arc respawns")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "neon-globe: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log.Path, cfg.Log.Development, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "neon-globe: logger: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "neon-globe: screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "neon-globe: screen init: %v\n", err)
		return 1
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Panic Recovery: ensure terminal is reset even if the main goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, fini, os.Stderr)
			os.Exit(1)
		}
	}()

	chime := newChime(cfg, log)
	defer chime.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, log, screen, chime)
	if err != nil {
		fini()
		fmt.Fprintf(os.Stderr, "neon-globe: %v\n", err)
		return 1
	}

	start := time.Now()
	runErr := a.Run(ctx)
	fini()

	st := a.Stats()
	log.Infow("shutdown",
		"uptime", time.Since(start).Round(time.Millisecond),
		"ticks", st.Ticks,
		"respawned", st.Respawned,
	)

	var pe *core.PanicError
	if errors.As(runErr, &pe) {
		log.Errorw("frame loop crashed", "panic", pe.Value)
		core.HandleCrash(pe, nil, os.Stderr)
		_ = log.Sync()
		return 1
	}

	if err := multierr.Combine(runErr, log.Sync()); err != nil {
		fmt.Fprintf(os.Stderr, "neon-globe: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers .env, config file, environment and finally explicitly set flags
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(*envFlag); err != nil {
		return nil, err
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "fps":
			cfg.FPS = *fpsFlag
		case "log":
			cfg.Log.Path = *logFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "audio":
			cfg.Audio.Enabled = *audioFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newChime falls back to silence when audio is off or the device cannot open
func newChime(cfg *config.Config, log *logger.Logger) audio.Chime {
	if !cfg.Audio.Enabled {
		return audio.Nop{}
	}
	sp := audio.NewSpeaker(audio.Settings{
		SampleRate: cfg.Audio.SampleRate,
		Frequency:  cfg.Audio.Frequency,
		Duration:   time.Duration(cfg.Audio.DurationMs) * time.Millisecond,
		Volume:     cfg.Audio.Volume,
	})
	alog := log.Named("audio")
	if err := sp.Init(); err != nil {
		// Non-fatal, the globe runs without sound
		alog.Warnw("initialization failed", "error", err)
		return audio.Nop{}
	}
	alog.Infow("speaker ready", "sample_rate", cfg.Audio.SampleRate, "volume", cfg.Audio.Volume)
	return sp
}
