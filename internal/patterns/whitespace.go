package patterns

import "github.com/RustWorks/harper-grammar-checker/internal/token"

// WhitespacePattern matches the longest run of leading whitespace tokens.
// At least one whitespace token is required.
type WhitespacePattern struct{}

func (WhitespacePattern) Matches(tokens []token.Token, _ []rune) (int, bool) {
	count := 0
	for _, t := range tokens {
		if !t.Kind.IsWhitespace() {
			break
		}
		count++
	}
	if count == 0 {
		return 0, false
	}
	return count, true
}
