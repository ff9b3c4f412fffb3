package patterns

import "github.com/RustWorks/harper-grammar-checker/internal/token"

// Invert matches a single token wherever its inner pattern does not match.
// Only the presence of an inner match matters, never its length. An empty
// token slice never matches, since there is no token to consume.
type Invert struct {
	inner Pattern
}

func NewInvert(inner Pattern) *Invert {
	return &Invert{inner: inner}
}

func (p *Invert) Matches(tokens []token.Token, source []rune) (int, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	if _, ok := p.inner.Matches(tokens, source); ok {
		return 0, false
	}
	return 1, true
}
