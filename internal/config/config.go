package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/folio/internal/nav"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config value")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "folio"
	DefaultConfigName = "folio"
	DefaultLogName    = "folio.log"
	EnvPrefix         = "folio"
)

type Mode string

const (
	// ModeSnap shows one full-viewport section at a time.
	ModeSnap Mode = "snap"
	// ModeScroll stacks every section in a freely scrolling viewport.
	ModeScroll Mode = "scroll"
)

type Config struct {
	// ProfilePath points to a profile yaml document. Empty uses the built-in profile.
	ProfilePath       string `mapstructure:"profile_path"`
	StartSection      int    `mapstructure:"start_section"`
	TransitionDelayMs int    `mapstructure:"transition_delay_ms"`
	MinIntervalMs     int    `mapstructure:"min_interval_ms"`
	StaggerMs         int    `mapstructure:"stagger_ms"`
	SwipeThresholdPx  int    `mapstructure:"swipe_threshold_px"`
	SwipeBudgetMs     int    `mapstructure:"swipe_budget_ms"`
	// CellHeightPx converts terminal rows into pixels for swipe detection.
	CellHeightPx int    `mapstructure:"cell_height_px"`
	MaxDigitKeys int    `mapstructure:"max_digit_keys"`
	Inputs       Inputs `mapstructure:"inputs"`
	Mode         Mode   `mapstructure:"mode"`
	FPS          int    `mapstructure:"fps"`
	LogLevel     string `mapstructure:"log_level"`
}

type Inputs struct {
	Wheel     bool `mapstructure:"wheel"`
	Touch     bool `mapstructure:"touch"`
	Keyboard  bool `mapstructure:"keyboard"`
	Indicator bool `mapstructure:"indicator"`
}

func (i Inputs) Sources() nav.InputSources {
	var sources nav.InputSources
	if i.Wheel {
		sources |= nav.InputWheel
	}

	if i.Touch {
		sources |= nav.InputTouch
	}

	if i.Keyboard {
		sources |= nav.InputKeyboard
	}

	if i.Indicator {
		sources |= nav.InputIndicator
	}

	return sources
}

// Timing converts the configured values into navigator timing.
func (c Config) Timing() nav.Timing {
	return nav.Timing{
		TransitionDelay: time.Duration(c.TransitionDelayMs) * time.Millisecond,
		MinInterval:     time.Duration(c.MinIntervalMs) * time.Millisecond,
		Stagger:         time.Duration(c.StaggerMs) * time.Millisecond,
		SwipeThreshold:  float64(c.SwipeThresholdPx),
		SwipeBudget:     time.Duration(c.SwipeBudgetMs) * time.Millisecond,
		MaxDigitKeys:    c.MaxDigitKeys,
		Inputs:          c.Inputs.Sources(),
	}
}

func (c Config) Validate() error {
	if c.Mode != ModeSnap && c.Mode != ModeScroll {
		return errors.Join(errConfigInvalid, errors.New("mode must be snap or scroll: "+string(c.Mode)))
	}

	for name, value := range map[string]int{
		"transition_delay_ms": c.TransitionDelayMs,
		"min_interval_ms":     c.MinIntervalMs,
		"stagger_ms":          c.StaggerMs,
		"swipe_threshold_px":  c.SwipeThresholdPx,
		"swipe_budget_ms":     c.SwipeBudgetMs,
		"start_section":       c.StartSection,
		"max_digit_keys":      c.MaxDigitKeys,
	} {
		if value < 0 {
			return errors.Join(errConfigInvalid, errors.New(name+" must not be negative"))
		}
	}

	if c.CellHeightPx <= 0 {
		return errors.Join(errConfigInvalid, errors.New("cell_height_px must be positive"))
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
