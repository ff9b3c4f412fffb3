package lints

import (
	"slices"
	"strings"

	"github.com/RustWorks/harper-grammar-checker/internal/document"
	"github.com/RustWorks/harper-grammar-checker/internal/token"
	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

const (
	adjectiveOfAMessage  = "The word `of` is not needed here."
	adjectiveOfAPriority = 63
)

// adjectives known to take the "adjective of a" construction
var adjectiveWhitelist = []string{"bad", "big", "good", "large", "long", "vague"}

// words that, right before an adjective, make the construction likely
// ("too big of a", "how important of a")
var contextWords = []string{"as", "how", "that", "this", "too"}

// adjectives that produce false positives even with a context word
// ("how much of a", "part of a")
var adjectiveBlacklist = []string{"much", "part"}

// AdjectiveOfA detects "adjective of a/an", as in "too large of a batch",
// and suggests dropping the "of".
type AdjectiveOfA struct{}

func (AdjectiveOfA) Description() string {
	return "This rule looks for sequences of words of the form `adjective of a`."
}

func (AdjectiveOfA) Lint(doc *document.Document) []types.Lint {
	var lints []types.Lint

	for i := range doc.AdjectiveIndices() {
		adjective, _ := doc.Token(i)
		space1, ok1 := doc.Token(i + 1)
		wordOf, ok2 := doc.Token(i + 2)
		space2, ok3 := doc.Token(i + 3)
		article, ok4 := doc.Token(i + 4)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}

		if !space1.Kind.IsWhitespace() || !space2.Kind.IsWhitespace() {
			continue
		}
		if !wordOf.Kind.IsWord() || wordOf.Lower(doc.Source()) != "of" {
			continue
		}
		if !article.Kind.IsWord() {
			continue
		}
		if a := article.Lower(doc.Source()); a != "a" && a != "an" {
			continue
		}

		adj := adjective.Lower(doc.Source())

		// Only flag adjectives known to use this construction, unless the
		// preceding word makes it clear.
		if !slices.Contains(adjectiveWhitelist, adj) && !hasContextWord(doc, i) {
			continue
		}
		if slices.Contains(adjectiveBlacklist, adj) {
			continue
		}

		// Comparatives and superlatives are idiomatic here:
		// "for the better of a day", "the best of a bad situation".
		if strings.HasSuffix(adj, "er") || strings.HasSuffix(adj, "st") {
			continue
		}
		// Present participles double as gerunds: "the beginning of a
		// conversation".
		if strings.HasSuffix(adj, "ing") && (adjective.Kind.IsNoun() || adjective.Kind.IsVerb()) {
			continue
		}

		lints = append(lints, types.Lint{
			Span:        types.Span{Start: adjective.Span.Start, End: article.Span.End},
			Kind:        types.LintKindStyle,
			Suggestions: dropOfSuggestions(doc, adjective, space1, space2, article),
			Message:     adjectiveOfAMessage,
			Priority:    adjectiveOfAPriority,
		})
	}

	return lints
}

// dropOfSuggestions rebuilds the phrase without "of". The whitespace before
// and after "of" may differ, so a variant is offered for each when they do.
func dropOfSuggestions(doc *document.Document, adjective, space1, space2, article token.Token) []types.Suggestion {
	build := func(space token.Token) []rune {
		var out []rune
		out = append(out, doc.SpanContent(adjective.Span)...)
		out = append(out, doc.SpanContent(space.Span)...)
		out = append(out, doc.SpanContent(article.Span)...)
		return out
	}

	return types.DedupSuggestions([]types.Suggestion{
		types.ReplaceWith(build(space1)),
		types.ReplaceWith(build(space2)),
	})
}

// hasContextWord reports whether the adjective at adjIdx is preceded by a
// single whitespace token and one of the context words.
func hasContextWord(doc *document.Document, adjIdx int) bool {
	if adjIdx < 2 {
		return false
	}

	space, ok := doc.Token(adjIdx - 1)
	if !ok || !space.Kind.IsWhitespace() {
		return false
	}

	word, ok := doc.Token(adjIdx - 2)
	if !ok || !word.Kind.IsWord() {
		return false
	}

	return slices.Contains(contextWords, word.Lower(doc.Source()))
}
