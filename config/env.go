package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvFPS          = "NEON_GLOBE_FPS"
	EnvSeed         = "NEON_GLOBE_SEED"
	EnvArcs         = "NEON_GLOBE_ARCS"
	EnvSpinRate     = "NEON_GLOBE_SPIN_RATE"
	EnvLogo         = "NEON_GLOBE_LOGO"
	EnvAudioEnabled = "NEON_GLOBE_AUDIO_ENABLED"
	EnvAudioVolume  = "NEON_GLOBE_AUDIO_VOLUME" // 0-100
	EnvLogPath      = "NEON_GLOBE_LOG_PATH"
	EnvDebug        = "NEON_GLOBE_DEBUG"
)

// ApplyEnv overrides cfg from NEON_GLOBE_* variables; set but malformed values are errors
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvFPS, v, err)
		}
		cfg.FPS = n
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, v, err)
		}
		cfg.Seed = n
	}

	if v, ok := os.LookupEnv(EnvArcs); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvArcs, v, err)
		}
		cfg.Arcs.Count = n
	}

	if v, ok := os.LookupEnv(EnvSpinRate); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvSpinRate, v, err)
		}
		cfg.Globe.SpinRate = f
	}

	if v, ok := os.LookupEnv(EnvLogo); ok {
		cfg.Globe.Logo = v
	}

	if v, ok := os.LookupEnv(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAudioEnabled, v, err)
		}
		cfg.Audio.Enabled = b
	}

	// Volume as 0-100 converted to 0.0-1.0, clamped
	if v, ok := os.LookupEnv(EnvAudioVolume); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvAudioVolume, v, err)
		}
		cfg.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
	}

	if v, ok := os.LookupEnv(EnvLogPath); ok && v != "" {
		cfg.Log.Path = v
	}

	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvDebug, v, err)
		}
		cfg.Log.Debug = b
	}

	return nil
}

func envError(key, val string, err error) error {
	return fmt.Errorf("env %s=%q: %w", key, val, err)
}
