package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bemto",
	Short: "BEM class names from a compact dotted shorthand",
	Long: `Render BEM class strings from shorthands like "tile--big.xs-4".
Blocks declared in YAML manifests become Go constants, and every rendered
class can be checked against the classes defined in your stylesheets.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig is called here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.String("package", "ui", "Go package name")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")
	pf.String("element-separator", "", `Element separator (default "__")`)
	pf.String("modifier-separator", "", `Modifier separator (default "--")`)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
