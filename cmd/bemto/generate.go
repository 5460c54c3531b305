package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemto/internal/bemgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate Go constants from bemto manifests",
	Long: `Render every block and call declared in the manifests and write one Go
constant per class string, plus an AllClasses lookup map.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("manifests", nil, `Manifest glob patterns (default "**/*.bemto.yaml")`)
	f.String("output-dir", ".", "Output directory for the generated file")
	f.String("output-file", bemgen.DefaultOutputFile, "Generated file name")
	f.Bool("check", false, "Run check after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig(newLogger(cmd.ErrOrStderr()))

	result, err := bemgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Generated %s\n", result.OutputPath)
		fmt.Fprintf(w, "  Manifests scanned: %d\n", result.ManifestsScanned)
		fmt.Fprintf(w, "  Constants generated: %d\n", result.ConstantsGenerated)

		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  Warning: %s\n", warning)
		}
	}

	// Run check after generate if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runCheck(cmd, nil)
	}

	return nil
}
