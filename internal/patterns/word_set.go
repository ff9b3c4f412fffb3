package patterns

import (
	"slices"

	"github.com/RustWorks/harper-grammar-checker/internal/token"
)

// WordSet matches a single word token whose lower-cased text is one of
// its members.
type WordSet struct {
	words []string
}

// NewWordSet builds a WordSet; members are lower-cased and deduplicated.
func NewWordSet(words ...string) *WordSet {
	ws := &WordSet{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = token.Lower(w)
		if !slices.Contains(ws.words, w) {
			ws.words = append(ws.words, w)
		}
	}
	return ws
}

// Contains reports whether word, compared case-insensitively, is a member.
func (ws *WordSet) Contains(word string) bool {
	return slices.Contains(ws.words, token.Lower(word))
}

// Words returns a copy of the members.
func (ws *WordSet) Words() []string {
	return slices.Clone(ws.words)
}

func (ws *WordSet) Matches(tokens []token.Token, source []rune) (int, bool) {
	if len(tokens) == 0 || !tokens[0].Kind.IsWord() {
		return 0, false
	}
	if !slices.Contains(ws.words, tokens[0].Lower(source)) {
		return 0, false
	}
	return 1, true
}

// IndefiniteArticle matches "a" or "an" in any letter case.
type IndefiniteArticle struct {
	inner *WordSet
}

func NewIndefiniteArticle() IndefiniteArticle {
	return IndefiniteArticle{inner: NewWordSet("a", "an")}
}

func (p IndefiniteArticle) Matches(tokens []token.Token, source []rune) (int, bool) {
	if p.inner == nil {
		return NewIndefiniteArticle().Matches(tokens, source)
	}
	return p.inner.Matches(tokens, source)
}
