package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemto/internal/bemgen"
)

// errCheckFailed is returned when the check gate fails.
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check rendered classes against stylesheets",
	Long: `Render every manifest and report classes that no stylesheet defines.
With --report-unused, stylesheet classes of declared blocks that nothing
renders are reported as warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("manifests", nil, `Manifest glob patterns (default "**/*.bemto.yaml")`)
	f.StringSlice("stylesheets", nil, `Stylesheet glob patterns (default "**/*.css")`)
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("report-unused", false, "Warn about stylesheet classes that are never rendered")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (bemcheck) suffix on issues")
}

// runCheck is shared between `bemto check` and `bemto generate --check`.
func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildCheckConfig(newLogger(cmd.ErrOrStderr()))

	result, err := bemgen.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := bemgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := bemgen.WriteOutput(cmd.OutOrStdout(), result, format, buildReportOptions()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	// Exit code logic: errors always fail, --strict also fails on warnings
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict && len(result.Issues) > 0 {
		if !quiet && result.ErrorCount == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "\nStrict mode: warnings are treated as errors")
		}
		return fmt.Errorf("%w: %d errors, %d warnings", errCheckFailed, result.ErrorCount, result.WarningCount)
	}
	if result.ErrorCount > 0 {
		return fmt.Errorf("%w: %d errors", errCheckFailed, result.ErrorCount)
	}

	return nil
}
