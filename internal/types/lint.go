package types

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// LintKind classifies what sort of problem a lint reports.
type LintKind uint8

const (
	LintKindStyle LintKind = iota
	LintKindSpelling
	LintKindCapitalization
	LintKindFormatting
	LintKindRepetition
	LintKindEnhancement
	LintKindWordChoice
	LintKindMiscellaneous
)

var lintKindNames = [...]string{
	LintKindStyle:          "Style",
	LintKindSpelling:       "Spelling",
	LintKindCapitalization: "Capitalization",
	LintKindFormatting:     "Formatting",
	LintKindRepetition:     "Repetition",
	LintKindEnhancement:    "Enhancement",
	LintKindWordChoice:     "WordChoice",
	LintKindMiscellaneous:  "Miscellaneous",
}

func (k LintKind) String() string {
	if int(k) < len(lintKindNames) {
		return lintKindNames[k]
	}
	return fmt.Sprintf("LintKind(%d)", k)
}

func (k LintKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *LintKind) UnmarshalText(text []byte) error {
	for i, name := range lintKindNames {
		if strings.EqualFold(name, string(text)) {
			*k = LintKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown lint kind %q", text)
}

// Lint is a single diagnostic produced by a linter.
//
// Priority only orders lints against each other: when two lints overlap,
// the one with the higher priority wins.
type Lint struct {
	Span        Span
	Kind        LintKind
	Suggestions []Suggestion
	Message     string
	Priority    uint8
}

// SortLints orders lints by start offset, then by descending priority,
// then longest first. The sort is stable.
func SortLints(lints []Lint) {
	sort.SliceStable(lints, func(i, j int) bool {
		return lintLess(lints[i], lints[j])
	})
}

func lintLess(a, b Lint) bool {
	if a.Span.Start != b.Span.Start {
		return a.Span.Start < b.Span.Start
	}
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.Span.End > b.Span.End
}

// RemoveOverlaps returns the lints that survive overlap resolution.
// Among overlapping lints the higher priority one is kept; on equal
// priority the earlier (then longer) one wins. The input is not modified.
func RemoveOverlaps(lints []Lint) []Lint {
	return RemoveOverlapsFunc(lints, func(l Lint) Lint { return l })
}

// RemoveOverlapsFunc is RemoveOverlaps for values that carry a Lint, such
// as lints tagged with the rule that produced them. The survivors are
// returned in SortLints order.
func RemoveOverlapsFunc[T any](items []T, lintOf func(T) Lint) []T {
	byRank := slices.Clone(items)
	sort.SliceStable(byRank, func(i, j int) bool {
		a, b := lintOf(byRank[i]), lintOf(byRank[j])
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.Span.Start != b.Span.Start {
			return a.Span.Start < b.Span.Start
		}
		return a.Span.End > b.Span.End
	})

	kept := make([]T, 0, len(byRank))
	for _, candidate := range byRank {
		c := lintOf(candidate)
		overlapping := slices.ContainsFunc(kept, func(k T) bool {
			l := lintOf(k)
			// Overlaps is false for two identical empty spans; treat them
			// as overlapping too
			return l.Span.Overlaps(c.Span) || l.Span == c.Span
		})
		if !overlapping {
			kept = append(kept, candidate)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return lintLess(lintOf(kept[i]), lintOf(kept[j]))
	})
	return kept
}
