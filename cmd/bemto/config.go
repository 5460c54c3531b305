package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/bemto"
	"github.com/yacobolo/bemto/internal/bemgen"
)

const defaultConfigFile = ".bemto.yaml"

var k = koanf.New(".")

var (
	defaultManifests   = []string{"**/*.bemto.yaml"}
	defaultStylesheets = []string{"**/*.css"}
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user set are merged,
	// so an unset flag never hides the matching config file key.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (BEMTO_* prefix)
	if err := k.Load(env.Provider("BEMTO_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// configSections are the nested blocks of .bemto.yaml.
var configSections = []string{"separators", "generate", "check"}

// envKey maps an environment variable to its config key. The section name is
// followed by "." and the remaining underscores become "-":
//
//	BEMTO_SEPARATORS_ELEMENT  -> separators.element
//	BEMTO_CHECK_REPORT_UNUSED -> check.report-unused
//	BEMTO_VERBOSE             -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "BEMTO_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildSeparators returns a separator config seeded from the config file,
// env and the --element-separator / --modifier-separator flags. Empty and
// non-string values keep the defaults.
func buildSeparators() *bemto.Config {
	cfg := bemto.NewConfig()

	values := map[string]any{}
	if v := k.Get("separators.element"); v != nil {
		values["element"] = v
	}
	if v := k.Get("separators.modifier"); v != nil {
		values["modifier"] = v
	}
	if v := k.String("element-separator"); v != "" {
		values["element"] = v
	}
	if v := k.String("modifier-separator"); v != "" {
		values["modifier"] = v
	}

	cfg.SetFromValues(values)
	return cfg
}

// newLogger returns a text logger writing to w: debug level with --verbose,
// warnings only otherwise.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if getBoolWithFallback("verbose", "verbose", false) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildGenerateConfig constructs the generator config from koanf state.
func buildGenerateConfig(logger *slog.Logger) bemgen.GenerateConfig {
	return bemgen.GenerateConfig{
		Manifests:   getStringsWithFallback("manifests", "generate.manifests", defaultManifests),
		OutputDir:   getStringWithFallback("output-dir", "generate.output-dir", "."),
		OutputFile:  getStringWithFallback("output-file", "generate.output-file", bemgen.DefaultOutputFile),
		PackageName: getStringWithFallback("package", "package", "ui"),
		Separators:  buildSeparators(),
		Logger:      logger,
	}
}

// buildCheckConfig constructs the checker config from koanf state.
func buildCheckConfig(logger *slog.Logger) bemgen.CheckConfig {
	return bemgen.CheckConfig{
		Manifests:    getStringsWithFallback("manifests", "check.manifests", defaultManifests),
		Stylesheets:  getStringsWithFallback("stylesheets", "check.stylesheets", defaultStylesheets),
		Separators:   buildSeparators(),
		ReportUnused: getBoolWithFallback("report-unused", "check.report-unused", false),
		MaxIssues:    getIntWithFallback("max-issues", "check.max-issues", 0),
		MaxSame:      getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		Logger:       logger,
	}
}

// buildReportOptions reads the reporter switches shared by check output.
func buildReportOptions() bemgen.ReportOptions {
	return bemgen.ReportOptions{
		UseColors:       getBoolWithFallback("color", "color", false),
		PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for list values.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
