package fixer

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/text/unicode/norm"

	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
)

type Fixer struct {
	DryRun      bool
	MinPriority uint8 // issues below this priority are left alone
	Out         io.Writer
}

func New(dryRun bool, minPriority uint8) *Fixer {
	return &Fixer{
		DryRun:      dryRun,
		MinPriority: minPriority,
		Out:         os.Stdout,
	}
}

// Fix applies the first suggestion of every eligible issue to filename.
// It returns the number of edits made, or that would be made in dry-run mode.
func (f *Fixer) Fix(filename string, issues []tt.Issue) (int, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	eligible := f.eligible(issues)

	if f.DryRun {
		for _, issue := range eligible {
			fmt.Fprintf(f.Out, "Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			fmt.Fprintf(f.Out, "Suggestion: %q\n", issue.Suggestion())
		}
		return len(eligible), nil
	}

	fixed, applied := ApplyIssues(string(content), eligible)
	if applied == 0 {
		return 0, nil
	}

	info, err := os.Stat(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	if err := os.WriteFile(filename, []byte(fixed), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Fprintf(f.Out, "Fixed %d issue(s) in %s\n", applied, filename)
	return applied, nil
}

func (f *Fixer) eligible(issues []tt.Issue) []tt.Issue {
	var out []tt.Issue
	for _, issue := range issues {
		if len(issue.Suggestions) == 0 || issue.Priority < f.MinPriority {
			continue
		}
		out = append(out, issue)
	}
	return out
}

// ApplyIssues replaces the span of each issue with its first suggestion.
// Offsets are rune offsets into the NFC form of text, which is what the
// engine reports. Edits are applied from the end of the text backwards; an
// issue overlapping one already applied is skipped.
func ApplyIssues(text string, issues []tt.Issue) (string, int) {
	source := []rune(norm.NFC.String(text))

	ordered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if len(issue.Suggestions) > 0 {
			ordered = append(ordered, issue)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start.Offset == ordered[j].Start.Offset {
			return ordered[i].End.Offset > ordered[j].End.Offset
		}
		return ordered[i].Start.Offset > ordered[j].Start.Offset
	})

	applied := 0
	limit := len(source)
	for _, issue := range ordered {
		start, end := issue.Start.Offset, issue.End.Offset
		if start < 0 || end < start || end > limit {
			continue
		}

		replacement := []rune(issue.Suggestion())
		next := make([]rune, 0, len(source)-(end-start)+len(replacement))
		next = append(next, source[:start]...)
		next = append(next, replacement...)
		next = append(next, source[end:]...)
		source = next

		limit = start
		applied++
	}

	return string(source), applied
}
