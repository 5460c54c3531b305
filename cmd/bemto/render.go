package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/bemto"
	"github.com/yacobolo/bemto/internal/bemgen"
)

var renderCmd = &cobra.Command{
	Use:   "render <block> [call...]",
	Short: "Render a block and its calls to class strings",
	Long: `Render the block shorthand, then every call against it, one class string per line.
Calls that start with a dash must follow "--" so they are not read as flags:

  bemto render tile--big.xs-4 -- --active title__small`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("json", false, "Print the result as JSON")
}

type renderOutput struct {
	Shorthand string       `json:"shorthand"`
	Block     string       `json:"block"`
	Calls     []renderCall `json:"calls"`
}

type renderCall struct {
	Arg   string `json:"arg"`
	Class string `json:"class"`
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := buildSeparators()
	block := cfg.New(args[0])

	out := renderOutput{
		Shorthand: args[0],
		Block:     block.String(),
		Calls:     make([]renderCall, 0, len(args)-1),
	}
	for _, arg := range args[1:] {
		out.Calls = append(out.Calls, renderCall{Arg: arg, Class: block.Render(bemto.Shorthand(arg))})
	}

	w := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	useColors := bemgen.ShouldUseColors(getBoolWithFallback("color", "color", false))
	sep := cfg.Separators()

	fmt.Fprintln(w, bemgen.HighlightClasses(out.Block, sep, useColors))
	for _, c := range out.Calls {
		fmt.Fprintln(w, bemgen.HighlightClasses(c.Class, sep, useColors))
	}
	return nil
}
