package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/bemto"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), defaultConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
package: custom-pkg
verbose: true

separators:
  element: "-"
  modifier: "_"

generate:
  output-dir: custom/output
  manifests:
    - "ui/**/*.bemto.yaml"

check:
  strict: true
  max-issues: 10
`)
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "custom-pkg", k.String("package"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "-", k.String("separators.element"))
	assert.Equal(t, "custom/output", k.String("generate.output-dir"))
	assert.Equal(t, []string{"ui/**/*.bemto.yaml"}, k.Strings("generate.manifests"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, 10, k.Int("check.max-issues"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.bemto.yaml"))

	config := buildGenerateConfig(nil)
	assert.Equal(t, []string{"**/*.bemto.yaml"}, config.Manifests)
	assert.Equal(t, ".", config.OutputDir)
	assert.Equal(t, "classes.gen.go", config.OutputFile)
	assert.Equal(t, "ui", config.PackageName)
	assert.Equal(t, bemto.Separators{Element: "__", Modifier: "--"}, config.Separators.Separators())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
separators:
  element: from-file
check:
  strict: false
`)

	t.Setenv("BEMTO_SEPARATORS_ELEMENT", "~")
	t.Setenv("BEMTO_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "~", k.String("separators.element"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "~", buildSeparators().Separators().Element)
}

func TestEnvVarHyphenatedKeys(t *testing.T) {
	resetKoanf()

	t.Setenv("BEMTO_CHECK_REPORT_UNUSED", "true")
	t.Setenv("BEMTO_CHECK_MAX_SAME_ISSUES", "3")
	t.Setenv("BEMTO_CHECK_OUTPUT_FORMAT", "json")
	t.Setenv("BEMTO_GENERATE_OUTPUT_DIR", "from-env/out")
	t.Setenv("BEMTO_GENERATE_OUTPUT_FILE", "bem.gen.go")

	require.NoError(t, loadConfigFromPath("/nonexistent/.bemto.yaml"))

	assert.Equal(t, "json", k.String("check.output-format"))

	check := buildCheckConfig(nil)
	assert.True(t, check.ReportUnused)
	assert.Equal(t, 3, check.MaxSame)

	gen := buildGenerateConfig(nil)
	assert.Equal(t, "from-env/out", gen.OutputDir)
	assert.Equal(t, "bem.gen.go", gen.OutputFile)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"BEMTO_VERBOSE", "verbose"},
		{"BEMTO_PACKAGE", "package"},
		{"BEMTO_SEPARATORS_ELEMENT", "separators.element"},
		{"BEMTO_CHECK_STRICT", "check.strict"},
		{"BEMTO_CHECK_REPORT_UNUSED", "check.report-unused"},
		{"BEMTO_CHECK_PRINT_LINTER_NAME", "check.print-linter-name"},
		{"BEMTO_GENERATE_OUTPUT_DIR", "generate.output-dir"},
		{"BEMTO_ELEMENT_SEPARATOR", "element-separator"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestBuildCheckConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildCheckConfig(nil)
	assert.Equal(t, []string{"**/*.bemto.yaml"}, config.Manifests)
	assert.Equal(t, []string{"**/*.css"}, config.Stylesheets)
	assert.False(t, config.ReportUnused)
	assert.Equal(t, 0, config.MaxIssues)
	assert.Equal(t, 0, config.MaxSame)

	opts := buildReportOptions()
	assert.True(t, opts.PrintLines)
	assert.True(t, opts.PrintLinterName)
	assert.False(t, opts.UseColors)
}

func TestBuildCheckConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	configPath := writeConfig(t, `
check:
  manifests:
    - "src/**/*.bemto.yaml"
  stylesheets:
    - "web/**/*.css"
  report-unused: true
  max-same-issues: 2
  print-lines: false
`)
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildCheckConfig(nil)
	assert.Equal(t, []string{"src/**/*.bemto.yaml"}, config.Manifests)
	assert.Equal(t, []string{"web/**/*.css"}, config.Stylesheets)
	assert.True(t, config.ReportUnused)
	assert.Equal(t, 2, config.MaxSame)
	assert.False(t, buildReportOptions().PrintLines)
}

func TestBuildSeparators(t *testing.T) {
	tests := []struct {
		name   string
		config string
		flags  map[string]string
		want   bemto.Separators
	}{
		{
			name: "defaults",
			want: bemto.Separators{Element: "__", Modifier: "--"},
		},
		{
			name:   "from config file",
			config: "separators:\n  element: \"--\"\n  modifier: \"__\"\n",
			want:   bemto.Separators{Element: "--", Modifier: "__"},
		},
		{
			name:   "non-string config value keeps the default",
			config: "separators:\n  element: 5\n  modifier: \"~\"\n",
			want:   bemto.Separators{Element: "__", Modifier: "~"},
		},
		{
			name:   "empty config value keeps the default",
			config: "separators:\n  element: \"\"\n",
			want:   bemto.Separators{Element: "__", Modifier: "--"},
		},
		{
			name:   "flags win over config file",
			config: "separators:\n  element: \"--\"\n",
			flags:  map[string]string{"element-separator": "-"},
			want:   bemto.Separators{Element: "-", Modifier: "--"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetKoanf()
			if tt.config != "" {
				require.NoError(t, loadConfigFromPath(writeConfig(t, tt.config)))
			}
			for key, v := range tt.flags {
				require.NoError(t, k.Set(key, v))
			}

			assert.Equal(t, tt.want, buildSeparators().Separators())
		})
	}
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetStringsWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, []string{"a"}, getStringsWithFallback("flag-key", "config.key", []string{"a"}))

	require.NoError(t, k.Set("config.key", []string{"b", "c"}))
	assert.Equal(t, []string{"b", "c"}, getStringsWithFallback("flag-key", "config.key", []string{"a"}))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
