package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <shorthand>",
	Short: "Show how a shorthand is split into entity, modifiers and classes",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p := buildSeparators().Parse(args[0])

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "entity:    %s\n", p.Entity)
		fmt.Fprintf(w, "modifiers: %s\n", strings.Join(p.Modifiers, ", "))
		fmt.Fprintf(w, "classes:   %s\n", strings.Join(p.Classes, ", "))
		return nil
	},
}
