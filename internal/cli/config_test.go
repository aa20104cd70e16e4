package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/convkit/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")

	res := execute(t, "", "config", "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Configuration initialized successfully")
	assert.Contains(t, res.stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: "+config.CurrentVersion)
	assert.Contains(t, string(data), "default_format: text")

	res = execute(t, "", "config", "init")
	require.Error(t, res.err, "existing file is not overwritten")

	res = execute(t, "", "config", "init", "--force")
	require.NoError(t, res.err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "convkit.yaml")

	res := execute(t, "", "--config", path, "config", "init")
	require.NoError(t, res.err)

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	home := setupCLITest(t)

	res := execute(t, "", "config", "set", "display.precision.length", "2")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Set display.precision.length = 2")

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "length: 2")

	config.ResetGlobalConfigForTest()
	res = execute(t, "", "config", "get", "display.precision.length")
	require.NoError(t, res.err)
	assert.Equal(t, "2\n", res.stdout)

	config.ResetGlobalConfigForTest()
	res = execute(t, "", "convert", "1", "mi", "m")
	require.NoError(t, res.err)
	assert.Equal(t, "1,609.34\n", res.stdout)
}

func TestConfigSet_Invalid(t *testing.T) {
	home := setupCLITest(t)

	tests := [][]string{
		{"output.default_format", "table"},
		{"display.default_domain", "currency"},
		{"display.precision.length", "99"},
		{"logging.level", "loud"},
		{"version", "9.0.0"},
		{"no.such.key", "x"},
	}
	for _, args := range tests {
		res := execute(t, "", append([]string{"config", "set"}, args...)...)
		require.ErrorIs(t, res.err, config.ErrInvalidConfig, "%v", args)
	}

	_, err := os.Stat(filepath.Join(home, "config.yaml"))
	assert.True(t, os.IsNotExist(err), "nothing saved after failed sets")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "config", "get", "output.colour")
	require.ErrorIs(t, res.err, config.ErrUnknownKey)
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "config", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "output.default_format")
	assert.Contains(t, res.stdout, "logging.level")

	res = execute(t, "", "config", "list", "-o", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "key: display.default_domain")
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	res := execute(t, "", "config", "validate", "--verbose")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Configuration is valid")
	assert.Contains(t, res.stdout, "Output format: text")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("version: 2.0.0\n"), 0o600))
	config.ResetGlobalConfigForTest()

	res = execute(t, "", "config", "validate")
	require.ErrorIs(t, res.err, config.ErrIncompatibleVersion)
}
