package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	TickInterval  time.Duration
	ChordWindow   time.Duration
	ShowCompleted bool
	AltScreen     bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval:  50 * time.Millisecond,
		ChordWindow:   time.Second,
		ShowCompleted: false,
		AltScreen:     true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("REM_TICK_MS"); ok && v > 0 {
		cfg.TickInterval = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvInt("REM_CHORD_WINDOW_MS"); ok && v > 0 {
		cfg.ChordWindow = time.Duration(v) * time.Millisecond
	}
	if v, ok := getEnvBool("REM_SHOW_COMPLETED"); ok {
		cfg.ShowCompleted = v
	}
	if v, ok := getEnvBool("REM_ALT_SCREEN"); ok {
		cfg.AltScreen = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
