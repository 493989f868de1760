package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
	// done stops pending reload deliveries once nobody is receiving.
	done <-chan struct{}
}

// NewLoader creates a loader searching searchPaths, or the xdg config dir and the working directory
// when none are given. Valid reloads picked up by Watch are sent on changes.
func NewLoader(changes chan<- Config, searchPaths ...string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	Defaults(loader.Viper)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if len(searchPaths) == 0 {
		searchPaths = []string{Path(""), "."}
	}

	for _, searchPath := range searchPaths {
		loader.AddConfigPath(searchPath)
	}

	loader.AutomaticEnv()

	return &loader
}

// Defaults registers the default value of every key.
func Defaults(v *viper.Viper) {
	v.SetDefault("profile_path", "")
	v.SetDefault("start_section", 0)
	v.SetDefault("transition_delay_ms", 800)
	v.SetDefault("min_interval_ms", 800)
	v.SetDefault("stagger_ms", 100)
	v.SetDefault("swipe_threshold_px", 50)
	v.SetDefault("swipe_budget_ms", 300)
	v.SetDefault("cell_height_px", 16)
	v.SetDefault("max_digit_keys", 5)
	v.SetDefault("inputs.wheel", true)
	v.SetDefault("inputs.touch", true)
	v.SetDefault("inputs.keyboard", true)
	v.SetDefault("inputs.indicator", true)
	v.SetDefault("mode", string(ModeSnap))
	v.SetDefault("fps", 30)
	v.SetDefault("log_level", "info")
}

// Watch starts watching the config file in use for external edits. Reloads are delivered until
// ctx is done.
func (cl *Loader) Watch(ctx context.Context) {
	if cl.changes == nil || cl.ConfigFileUsed() == "" {
		return
	}

	cl.done = ctx.Done()

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	select {
	case cl.changes <- config:
	case <-cl.done:
		slog.Debug("Dropped config reload, no receiver")
	}
}

// Write persists config to path.
func (cl *Loader) Write(config Config, path string) error {
	cl.Set("profile_path", config.ProfilePath)
	cl.Set("start_section", config.StartSection)
	cl.Set("transition_delay_ms", config.TransitionDelayMs)
	cl.Set("min_interval_ms", config.MinIntervalMs)
	cl.Set("stagger_ms", config.StaggerMs)
	cl.Set("swipe_threshold_px", config.SwipeThresholdPx)
	cl.Set("swipe_budget_ms", config.SwipeBudgetMs)
	cl.Set("cell_height_px", config.CellHeightPx)
	cl.Set("max_digit_keys", config.MaxDigitKeys)
	cl.Set("inputs.wheel", config.Inputs.Wheel)
	cl.Set("inputs.touch", config.Inputs.Touch)
	cl.Set("inputs.keyboard", config.Inputs.Keyboard)
	cl.Set("inputs.indicator", config.Inputs.Indicator)
	cl.Set("mode", string(config.Mode))
	cl.Set("fps", config.FPS)
	cl.Set("log_level", config.LogLevel)

	if err := cl.WriteConfigAs(path); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

// Read loads the config file if one exists. A missing file is not an error, defaults apply.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
