package token

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

// Token is a classified span of a document's source.
type Token struct {
	Span types.Span
	Kind Kind
}

// Text returns the runes of source covered by the token.
func (t Token) Text(source []rune) []rune {
	return t.Span.Get(source)
}

// Lower returns the lower-cased text of the token.
func (t Token) Lower(source []rune) string {
	return Lower(string(t.Text(source)))
}

// Lower lower-cases s using Unicode case mapping. A fresh Caser is used
// per call because a Caser carries state and must not be shared.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
