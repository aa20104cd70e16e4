package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/convkit/internal/cli"
	"github.com/rshade/convkit/internal/config"
	"github.com/rshade/convkit/internal/units"
)

// setupCLITest isolates the configuration directory and global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.HomeEnvVar, home)
	t.Setenv("CONVKIT_LOGGING_LEVEL", "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

type cmdResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cmdResult{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestVersionFlag(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "test")
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"celsius to fahrenheit", []string{"100", "celsius", "fahrenheit"}, "212"},
		{"symbols", []string{"0", "°C", "K"}, "273.15"},
		{"negative value", []string{"--", "-40", "C", "F"}, "-40"},
		{"kilometers to miles", []string{"1", "km", "mi"}, "0.621371"},
		{"precision flag", []string{"1", "mi", "m", "--precision", "0"}, "1,609"},
		{"explicit domain", []string{"1", "GB", "MB", "--domain", "data"}, "1,000"},
		{"not a number", []string{"abc", "km", "mi"}, units.Placeholder},
		{"empty value", []string{"", "km", "mi"}, units.Placeholder},
		{"same unit", []string{"3.25", "kg", "kg"}, "3.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			res := execute(t, "", append([]string{"convert"}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want+"\n", res.stdout)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErrIs error
	}{
		{"cross domain", []string{"1", "km", "celsius"}, units.ErrDomainMismatch},
		{"unknown unit", []string{"1", "parsec", "m"}, units.ErrUnknownUnit},
		{"unit outside domain", []string{"1", "km", "mi", "--domain", "weight"}, units.ErrUnknownUnit},
		{"unknown domain", []string{"1", "km", "mi", "--domain", "time"}, units.ErrUnknownDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			res := execute(t, "", append([]string{"convert"}, tt.args...)...)
			require.ErrorIs(t, res.err, tt.wantErrIs)
		})
	}

	t.Run("bad output format", func(t *testing.T) {
		setupCLITest(t)
		res := execute(t, "", "convert", "1", "km", "mi", "--output", "xml")
		require.Error(t, res.err)
	})

	t.Run("precision too large", func(t *testing.T) {
		setupCLITest(t)
		res := execute(t, "", "convert", "1", "km", "mi", "--precision", "50")
		require.Error(t, res.err)
	})

	t.Run("wrong arg count", func(t *testing.T) {
		setupCLITest(t)
		res := execute(t, "", "convert", "1", "km")
		require.Error(t, res.err)
	})
}

func TestConvert_JSONOutput(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "convert", "100", "celsius", "fahrenheit", "-o", "json")
	require.NoError(t, res.err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "212", got["result"])
	assert.Equal(t, "temperature", got["domain"])
	assert.Equal(t, "celsius", got["from"])
	assert.Equal(t, "fahrenheit", got["to"])
	assert.Equal(t, true, got["valid"])
}

func TestConvert_YAMLOutput(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "convert", "xyz", "celsius", "fahrenheit", "-o", "yaml")
	require.NoError(t, res.err)
	assert.Regexp(t, `result: ['"]-['"]`, res.stdout)
	assert.Contains(t, res.stdout, "valid: false")
}

func TestConvert_UsesConfig(t *testing.T) {
	home := setupCLITest(t)
	body := "output:\n  default_format: json\ndisplay:\n  precision:\n    length: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o600))

	res := execute(t, "", "convert", "1", "mi", "m")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"result": "1,609.3"`)
}

func TestConvert_IgnoresInvalidConfigValues(t *testing.T) {
	home := setupCLITest(t)
	body := "output:\n  default_format: xml\ndisplay:\n  precision:\n    length: -2\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o600))

	res := execute(t, "", "convert", "1", "mi", "km")
	require.NoError(t, res.err)
	assert.Equal(t, "1.609344\n", res.stdout)

	res = execute(t, "", "config", "validate")
	require.ErrorIs(t, res.err, config.ErrInvalidConfig, "the file itself is still reported")
}

func TestConvert_PrecisionFromEnv(t *testing.T) {
	setupCLITest(t)
	t.Setenv("CONVKIT_DISPLAY_PRECISION_LENGTH", "1")

	res := execute(t, "", "convert", "1", "mi", "m")
	require.NoError(t, res.err)
	assert.Equal(t, "1,609.3\n", res.stdout)
}

func TestConfigFlag(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  precision:\n    temperature: 0\n"), 0o600))

	res := execute(t, "", "--config", path, "convert", "0", "K", "C")
	require.NoError(t, res.err)
	assert.Equal(t, "-273\n", res.stdout)

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("display: [oops\n"), 0o600))
	res = execute(t, "", "--config", broken, "convert", "1", "km", "m")
	require.Error(t, res.err)
}

func TestBatch(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "1\n\n  2  \nabc\n", "batch", "km", "m")
	require.NoError(t, res.err)
	assert.Equal(t, "1\t1,000\n2\t2,000\nabc\t-\n", res.stdout)
}

func TestBatch_File(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "temps.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n100\n"), 0o600))

	res := execute(t, "", "batch", "celsius", "kelvin", "--file", path)
	require.NoError(t, res.err)
	assert.Equal(t, "0\t273.15\n100\t373.15\n", res.stdout)

	res = execute(t, "", "batch", "celsius", "kelvin", "--file", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, res.err)
}

func TestUnits(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "units")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "DOMAIN")
	for _, d := range units.Domains() {
		assert.Contains(t, res.stdout, string(d))
	}
	assert.Contains(t, res.stdout, "°C")

	res = execute(t, "", "units", "data", "-o", "json")
	require.NoError(t, res.err)
	var listings []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "data", listings[0]["domain"])
	assert.Equal(t, "megabyte", listings[0]["default_from"])

	res = execute(t, "", "units", "time")
	require.ErrorIs(t, res.err, units.ErrUnknownDomain)
}

func TestTUI_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	res := execute(t, "", "tui")
	require.ErrorIs(t, res.err, cli.ErrNotATerminal)
}

func TestTheme(t *testing.T) {
	home := setupCLITest(t)

	res := execute(t, "", "theme")
	require.NoError(t, res.err)
	assert.Equal(t, "dark\n", res.stdout)

	res = execute(t, "", "theme", "light")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Theme set to light")
	_, err := os.Stat(filepath.Join(home, "settings.json"))
	require.NoError(t, err)

	res = execute(t, "", "theme")
	require.NoError(t, res.err)
	assert.Equal(t, "light\n", res.stdout)

	res = execute(t, "", "theme", "neon")
	require.ErrorIs(t, res.err, config.ErrUnknownTheme)
}

func TestTheme_CorruptedSettings(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0o600))

	res := execute(t, "", "theme")
	require.ErrorIs(t, res.err, config.ErrSettingsCorrupted)

	res = execute(t, "", "theme", "dark")
	require.NoError(t, res.err, "setting a theme repairs the file")
	assert.Contains(t, res.stderr, "Warning")
}
