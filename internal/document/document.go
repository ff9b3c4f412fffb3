// Package document provides the tokenized, read-only view of a text buffer
// that linters operate on.
package document

import (
	"iter"

	"golang.org/x/text/unicode/norm"

	"github.com/RustWorks/harper-grammar-checker/internal/lexicon"
	"github.com/RustWorks/harper-grammar-checker/internal/token"
	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

// Classifier assigns part-of-speech capabilities to a word.
type Classifier interface {
	Classify(word string) token.Kind
}

// Document owns a source buffer and the tokens derived from it.
// It is never modified after construction, so it may be shared freely
// between goroutines.
type Document struct {
	source []rune
	tokens []token.Token
}

// New tokenizes text and classifies every word with classifier.
// The text is normalized to NFC first so that spans are stable for
// precomposed and decomposed input alike.
func New(text string, classifier Classifier) *Document {
	source := []rune(norm.NFC.String(text))
	tokens := Lex(source)

	if classifier != nil {
		for i := range tokens {
			if !tokens[i].Kind.IsWord() {
				continue
			}
			word := string(tokens[i].Text(source))
			tokens[i].Kind |= classifier.Classify(word)
		}
	}

	return &Document{source: source, tokens: tokens}
}

// NewPlainEnglish builds a document classified with the curated lexicon.
func NewPlainEnglish(text string) *Document {
	return New(text, lexicon.Curated())
}

// Token returns the token at index i, or false when i is out of range.
func (d *Document) Token(i int) (token.Token, bool) {
	if i < 0 || i >= len(d.tokens) {
		return token.Token{}, false
	}
	return d.tokens[i], true
}

// Tokens returns the token sequence. Callers must not modify it.
func (d *Document) Tokens() []token.Token {
	return d.tokens
}

// Source returns the normalized source. Callers must not modify it.
func (d *Document) Source() []rune {
	return d.source
}

func (d *Document) String() string {
	return string(d.source)
}

// Len returns the number of tokens.
func (d *Document) Len() int {
	return len(d.tokens)
}

// SpanContent returns the runes covered by span.
func (d *Document) SpanContent(span types.Span) []rune {
	return span.Get(d.source)
}

// SpanContentString returns the text covered by span.
func (d *Document) SpanContentString(span types.Span) string {
	return string(span.Get(d.source))
}

// IndicesOf yields, in ascending order, the index of every token carrying
// all capabilities in kind. The sequence can be ranged over repeatedly.
func (d *Document) IndicesOf(kind token.Kind) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, t := range d.tokens {
			if t.Kind.Has(kind) && !yield(i) {
				return
			}
		}
	}
}

// AdjectiveIndices yields the index of every adjective token.
func (d *Document) AdjectiveIndices() iter.Seq[int] {
	return d.IndicesOf(token.Adjective)
}
