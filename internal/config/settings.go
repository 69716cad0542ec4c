package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	LayoutCard    = "card"
	LayoutLanyard = "lanyard"
)

// Settings are the runtime knobs read from the environment.
type Settings struct {
	LogLevel    string  `env:"VNC_LOG_LEVEL" envDefault:"info"`
	Seed        uint64  `env:"VNC_SEED"`
	Festival    string  `env:"VNC_FESTIVAL"`
	Date        string  `env:"VNC_DATE"`
	Audio       bool    `env:"VNC_AUDIO"     envDefault:"true"`
	PatternPath string  `env:"VNC_PATTERN"`
	Layout      string  `env:"VNC_LAYOUT"    envDefault:"card"`
	Width       int     `env:"VNC_WIDTH"     envDefault:"1024"`
	Height      int     `env:"VNC_HEIGHT"    envDefault:"640"`
	Tilt        float64 `env:"VNC_TILT"      envDefault:"10"`
}

// Load parses Settings from the environment.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Layout != LayoutLanyard {
		s.Layout = LayoutCard
	}
	if s.Width <= 0 {
		s.Width = WindowWidth
	}
	if s.Height <= 0 {
		s.Height = WindowHeight
	}
	return s, nil
}

// Defaults returns the settings used when the environment cannot be parsed.
func Defaults() Settings {
	return Settings{
		LogLevel: "info",
		Audio:    true,
		Layout:   LayoutCard,
		Width:    WindowWidth,
		Height:   WindowHeight,
		Tilt:     DesktopTilt,
	}
}

// FestivalDate returns the date festival selection should use: the
// VNC_DATE override when set, now otherwise.
func (s Settings) FestivalDate(now time.Time) (time.Time, error) {
	if s.Date == "" {
		return now, nil
	}
	d, err := time.ParseInLocation("2006-01-02", s.Date, now.Location())
	if err != nil {
		return now, fmt.Errorf("parse VNC_DATE: %w", err)
	}
	return d, nil
}
