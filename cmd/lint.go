package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RustWorks/harper-grammar-checker/formatter"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
	"github.com/RustWorks/harper-grammar-checker/lint"
)

var (
	ignoreRules    string
	ignorePaths    string
	lintJsonOutput bool
	outPath        string
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Check files, directories, or standard input (-) for issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please provide file or directory paths, or - for standard input")
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := newEngine()
		if err != nil {
			return fmt.Errorf("failed to initialize lint engine: %w", err)
		}
		ignoreFromFlags(engine, ignoreRules, ignorePaths)

		return runNormalLintProcess(ctx, logger, engine, args, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of lint rules to ignore")
	lintCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	lintCmd.Flags().BoolVar(&lintJsonOutput, "json", false, "Output issues in JSON format")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runNormalLintProcess(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, stdin io.Reader, out io.Writer) error {
	var (
		issues  []tt.Issue
		sources = make(map[string]string)
	)

	var files []string
	for _, path := range paths {
		if path != "-" {
			files = append(files, path)
			continue
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("error reading standard input: %w", err)
		}
		sources[lint.StdinName] = string(data)
		stdinIssues, err := lint.ProcessSources(ctx, logger, engine, [][]byte{data}, lint.ProcessSource)
		if err != nil {
			return err
		}
		issues = append(issues, stdinIssues...)
	}

	fileIssues, err := lint.ProcessFiles(ctx, logger, engine, files, lint.ProcessFile)
	if err != nil {
		return fmt.Errorf("error processing files: %w", err)
	}
	issues = append(issues, fileIssues...)

	if err := printIssues(logger, out, issues, sources, lintJsonOutput, outPath); err != nil {
		return err
	}

	if len(issues) > 0 {
		return ErrIssuesFound
	}
	return nil
}

func printIssues(logger *zap.Logger, out io.Writer, issues []tt.Issue, sources map[string]string, isJson bool, jsonOutput string) error {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if isJson {
		d, err := json.MarshalIndent(issuesByFile, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling issues to JSON: %w", err)
		}
		if jsonOutput == "" {
			fmt.Fprintln(out, string(d))
			return nil
		}
		if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
			return fmt.Errorf("error writing JSON output file: %w", err)
		}
		return nil
	}

	// text output
	for _, filename := range sortedFiles {
		text, ok := sources[filename]
		if !ok {
			content, err := os.ReadFile(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				continue
			}
			text = string(content)
		}
		fmt.Fprint(out, formatter.GenerateFormattedIssue(issuesByFile[filename], formatter.NewSource(text)))
	}
	return nil
}
