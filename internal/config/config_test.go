package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txxt.yaml")
	content := "check:\n  max_concurrent: 3\ndaemon:\n  debounce: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Check.MaxConcurrent)
	require.Equal(t, 2*time.Second, cfg.DebounceDuration())
	// Untouched values keep their defaults.
	require.Equal(t, Default().Daemon.Listen, cfg.Daemon.Listen)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txxt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daemon:\n  listen: 1.2.3.4:1\n"), 0o644))
	t.Setenv("TXXT_LISTEN", "127.0.0.1:9999")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9999", cfg.Daemon.Listen)
}

func TestLoad_InvalidDurationIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txxt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("daemon:\n  debounce: soon\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_RejectsZeroConcurrency(t *testing.T) {
	cfg := Default()
	cfg.Check.MaxConcurrent = 0
	require.Error(t, cfg.Validate())
}
