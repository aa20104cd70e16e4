package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubHome points the configuration directory at a fresh temp dir.
func stubHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(HomeEnvVar, dir)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)
	return dir
}

func TestGlobalConfig(t *testing.T) {
	stubHome(t)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, FormatText, cfg.Output.DefaultFormat)

	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestSetGlobalConfig(t *testing.T) {
	stubHome(t)

	custom := defaults("")
	custom.Output.DefaultFormat = FormatJSON
	SetGlobalConfig(custom)

	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())

	custom.Output.DefaultFormat = "xml"
	assert.Equal(t, FormatText, GetDefaultOutputFormat())
}

func TestGetLoggingConfig(t *testing.T) {
	stubHome(t)

	cfg := GetGlobalConfig()
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/convkit-test.log"

	lc := GetLoggingConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "/tmp/convkit-test.log", lc.File)
}

func TestGetConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		home := stubHome(t)

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, home, dir)

		path, err := DefaultConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "config.yaml"), path)

		path, err = DefaultSettingsPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "settings.json"), path)
	})

	t.Run("user home", func(t *testing.T) {
		tmpHome := t.TempDir()
		t.Setenv(HomeEnvVar, "")
		t.Setenv("HOME", tmpHome)
		t.Setenv("USERPROFILE", tmpHome)

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpHome, ".convkit"), dir)
	})
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "convkit")
	t.Setenv(HomeEnvVar, home)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	stubHome(t)
	tmpDir := t.TempDir()

	cfg := GetGlobalConfig()
	cfg.Logging.File = filepath.Join(tmpDir, "logs", "subdir", "convkit.log")
	require.NoError(t, EnsureLogDir())

	stat, err := os.Stat(filepath.Join(tmpDir, "logs", "subdir"))
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	cfg.Logging.File = ""
	assert.NoError(t, EnsureLogDir(), "no log file is a no-op")
}

func TestEnsureLogDirError(t *testing.T) {
	stubHome(t)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	GetGlobalConfig().Logging.File = filepath.Join(blocker, "subdir", "convkit.log")
	assert.Error(t, EnsureLogDir())
}
