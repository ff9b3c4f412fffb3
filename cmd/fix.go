package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RustWorks/harper-grammar-checker/internal/fixer"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
	"github.com/RustWorks/harper-grammar-checker/lint"
)

// an applied edit can expose a new match, so files are re-linted until
// nothing changes or this many passes ran
const maxFixPasses = 5

var (
	dryRun      bool
	minPriority uint8
)

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically fix issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please provide file or directory paths")
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// initialize the lint engine
		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		ignoreFromFlags(engine, ignoreRules, ignorePaths)

		fix := fixer.New(dryRun, minPriority)
		fix.Out = cmd.OutOrStdout()
		return runAutoFix(ctx, logger, engine, fix, args)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run in dry-run mode (show fixes without applying them)")
	fixCmd.Flags().Uint8Var(&minPriority, "min-priority", 0, "Only fix issues with at least this priority (0-255)")
	fixCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	fixCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
}

func runAutoFix(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, fix *fixer.Fixer, paths []string) error {
	for pass := 0; pass < maxFixPasses; pass++ {
		issues, err := lint.ProcessFiles(ctx, logger, engine, paths, lint.ProcessFile)
		if err != nil {
			return fmt.Errorf("error processing files: %w", err)
		}

		byFile := make(map[string][]tt.Issue)
		var order []string
		for _, issue := range issues {
			if _, seen := byFile[issue.Filename]; !seen {
				order = append(order, issue.Filename)
			}
			byFile[issue.Filename] = append(byFile[issue.Filename], issue)
		}

		edits := 0
		for _, filename := range order {
			n, err := fix.Fix(filename, byFile[filename])
			if err != nil {
				logger.Error("error fixing issues", zap.String("file", filename), zap.Error(err))
				continue
			}
			edits += n
		}

		if fix.DryRun || edits == 0 {
			return nil
		}
		logger.Debug("Fix pass applied edits", zap.Int("pass", pass+1), zap.Int("edits", edits))
	}
	return nil
}
