package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/stretchr/testify/require"
)

func TestReadDefaults(t *testing.T) {
	loader := config.NewLoader(nil, t.TempDir())
	conf, err := loader.Read()
	require.NoError(t, err)

	require.Equal(t, config.ModeSnap, conf.Mode)
	require.Equal(t, 16, conf.CellHeightPx)
	require.Equal(t, nav.DefaultTiming(), conf.Timing())
}

func TestWriteRead(t *testing.T) {
	dir := t.TempDir()
	loader := config.NewLoader(nil, dir)
	conf, err := loader.Read()
	require.NoError(t, err)

	conf.StaggerMs = 40
	conf.Mode = config.ModeScroll
	conf.Inputs.Wheel = false
	require.NoError(t, loader.Write(conf, filepath.Join(dir, "folio.yaml")))

	reloaded, err := config.NewLoader(nil, dir).Read()
	require.NoError(t, err)
	require.Equal(t, config.ModeScroll, reloaded.Mode)
	require.Equal(t, 40*time.Millisecond, reloaded.Timing().Stagger)
	require.False(t, reloaded.Timing().Inputs.Has(nav.InputWheel))
	require.True(t, reloaded.Timing().Inputs.Has(nav.InputKeyboard))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_MIN_INTERVAL_MS", "250")
	conf, err := config.NewLoader(nil, t.TempDir()).Read()
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, conf.Timing().MinInterval)
}

func TestReadInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "folio.yaml"), []byte("mode: sideways\n"), 0o600))

	_, err := config.NewLoader(nil, dir).Read()
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "DEBUG", config.ParseLevel("debug").String())
	require.Equal(t, "WARN", config.ParseLevel("Warning").String())
	require.Equal(t, "INFO", config.ParseLevel("").String())
}
