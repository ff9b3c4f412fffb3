package types

import (
	"fmt"
	"slices"
)

// SuggestionKind selects how a Suggestion edits the lint's span.
type SuggestionKind uint8

const (
	// SuggestReplaceWith replaces the whole span with Text.
	SuggestReplaceWith SuggestionKind = iota
	// SuggestRemove deletes the span.
	SuggestRemove
	// SuggestInsertAfter keeps the span and appends Text after it.
	SuggestInsertAfter
)

// Suggestion is a proposed edit for the span of a Lint.
type Suggestion struct {
	Kind SuggestionKind
	Text []rune
}

// ReplaceWith suggests replacing the span with text. The runes are copied.
func ReplaceWith(text []rune) Suggestion {
	return Suggestion{Kind: SuggestReplaceWith, Text: slices.Clone(text)}
}

// ReplaceWithString is ReplaceWith for a string literal.
func ReplaceWithString(text string) Suggestion {
	return Suggestion{Kind: SuggestReplaceWith, Text: []rune(text)}
}

func Remove() Suggestion {
	return Suggestion{Kind: SuggestRemove}
}

func InsertAfter(text []rune) Suggestion {
	return Suggestion{Kind: SuggestInsertAfter, Text: slices.Clone(text)}
}

// Apply returns a new buffer with the suggestion applied to span in source.
// source itself is never modified.
func (s Suggestion) Apply(span Span, source []rune) []rune {
	start, end := clampSpan(span, len(source))

	out := make([]rune, 0, len(source)+len(s.Text))
	switch s.Kind {
	case SuggestReplaceWith:
		out = append(out, source[:start]...)
		out = append(out, s.Text...)
		out = append(out, source[end:]...)
	case SuggestRemove:
		out = append(out, source[:start]...)
		out = append(out, source[end:]...)
	case SuggestInsertAfter:
		out = append(out, source[:end]...)
		out = append(out, s.Text...)
		out = append(out, source[end:]...)
	default:
		out = append(out, source...)
	}
	return out
}

// Replacement returns the text that takes the place of original, the
// current content of the lint's span, once the suggestion is applied.
func (s Suggestion) Replacement(original []rune) []rune {
	switch s.Kind {
	case SuggestReplaceWith:
		return slices.Clone(s.Text)
	case SuggestRemove:
		return nil
	case SuggestInsertAfter:
		return append(slices.Clone(original), s.Text...)
	default:
		return slices.Clone(original)
	}
}

// Equal reports whether both suggestions perform the same edit.
func (s Suggestion) Equal(other Suggestion) bool {
	return s.Kind == other.Kind && slices.Equal(s.Text, other.Text)
}

func (s Suggestion) String() string {
	switch s.Kind {
	case SuggestReplaceWith:
		return fmt.Sprintf("Replace with: %q", string(s.Text))
	case SuggestRemove:
		return "Remove error"
	case SuggestInsertAfter:
		return fmt.Sprintf("Insert %q", string(s.Text))
	default:
		return "Unknown suggestion"
	}
}

// DedupSuggestions drops repeated suggestions, keeping the first occurrence
// of each so the original order is preserved.
func DedupSuggestions(suggestions []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if !slices.ContainsFunc(out, s.Equal) {
			out = append(out, s)
		}
	}
	return out
}

func clampSpan(span Span, n int) (int, int) {
	start, end := span.Start, span.End
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}
