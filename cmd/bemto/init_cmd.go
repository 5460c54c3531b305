package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .bemto.yaml config file",
	Long:  `Create a .bemto.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# bemto configuration
# Docs: https://github.com/yacobolo/bemto

# Shared settings
package: ui
verbose: false

separators:
  element: "__"
  modifier: "--"

# Generation settings
generate:
  manifests:
    - "**/*.bemto.yaml"
  output-dir: internal/web/ui
  output-file: classes.gen.go

# Check settings
check:
  manifests:
    - "**/*.bemto.yaml"
  stylesheets:
    - "web/ui/src/styles/**/*.css"
  strict: false
  report-unused: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
