package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RustWorks/harper-grammar-checker/internal"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the available rules and their severity",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		return printRules(cmd.OutOrStdout(), engine.Rules())
	},
}

func printRules(out io.Writer, rules []internal.LintRule) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tSEVERITY\tDESCRIPTION")
	for _, rule := range rules {
		fmt.Fprintf(w, "%s\t%s\t%s\n", rule.Name(), rule.Severity(), rule.Description())
	}
	return w.Flush()
}
