// Package patterns implements prefix matchers over token sequences.
//
// Every Pattern decides whether, and over how many leading tokens, it
// matches at the start of the slice it is given. A failed match is a normal
// result, not an error. Patterns hold no document data and may be shared
// between goroutines.
package patterns

import "github.com/RustWorks/harper-grammar-checker/internal/token"

// Pattern matches a prefix of tokens.
//
// Matches returns ok == false when the pattern does not match at
// tokens[0]. Otherwise tokens[:n] matched; n may be zero.
type Pattern interface {
	Matches(tokens []token.Token, source []rune) (n int, ok bool)
}

// PatternFunc adapts an ordinary function to the Pattern interface.
type PatternFunc func(tokens []token.Token, source []rune) (int, bool)

func (f PatternFunc) Matches(tokens []token.Token, source []rune) (int, bool) {
	return f(tokens, source)
}

// AnyPattern matches exactly one token of any kind.
type AnyPattern struct{}

func (AnyPattern) Matches(tokens []token.Token, _ []rune) (int, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	return 1, true
}

// TokenKindPattern matches one token carrying at least one of the
// capabilities in Kind.
type TokenKindPattern struct {
	Kind token.Kind
}

func (p TokenKindPattern) Matches(tokens []token.Token, _ []rune) (int, bool) {
	if len(tokens) == 0 || !tokens[0].Kind.Any(p.Kind) {
		return 0, false
	}
	return 1, true
}
