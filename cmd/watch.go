package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RustWorks/harper-grammar-checker/formatter"
	"github.com/RustWorks/harper-grammar-checker/internal"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
	"github.com/RustWorks/harper-grammar-checker/scanner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-check prose files whenever they change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"."}
		}

		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		ignoreFromFlags(engine, ignoreRules, ignorePaths)

		out := cmd.OutOrStdout()
		watcher, err := internal.NewWatcher(engine, scanner.DefaultExtensions, func(filename string, issues []tt.Issue) {
			if len(issues) == 0 {
				fmt.Fprintf(out, "%s: no issues\n", filename)
				return
			}
			content, err := os.ReadFile(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				return
			}
			fmt.Fprint(out, formatter.GenerateFormattedIssue(issues, formatter.NewSource(string(content))))
		})
		if err != nil {
			return err
		}

		for _, dir := range args {
			if err := watcher.Add(dir); err != nil {
				return err
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching for changes", zap.Strings("dirs", args))
		return watcher.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	watchCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
}
