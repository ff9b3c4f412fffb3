package patterns

import "github.com/RustWorks/harper-grammar-checker/internal/token"

// RepeatingPattern matches its inner pattern as many times in a row as
// possible, somewhat like `*` or `{n,}` in a regular expression.
type RepeatingPattern struct {
	inner               Pattern
	requiredRepetitions int
}

// NewRepeatingPattern requires at least requiredRepetitions consecutive
// matches of inner.
func NewRepeatingPattern(inner Pattern, requiredRepetitions int) *RepeatingPattern {
	return &RepeatingPattern{
		inner:               inner,
		requiredRepetitions: requiredRepetitions,
	}
}

// Matches returns the total length consumed by all repetitions.
//
// A repetition that matches zero tokens would repeat forever without
// advancing, so it counts as satisfying any repetition requirement: the
// loop stops there and reports success with the length consumed so far.
func (p *RepeatingPattern) Matches(tokens []token.Token, source []rune) (int, bool) {
	cursor := 0
	repetitions := 0

	for {
		n, ok := p.inner.Matches(tokens[cursor:], source)
		if !ok {
			if repetitions >= p.requiredRepetitions {
				return cursor, true
			}
			return 0, false
		}
		if n == 0 {
			return cursor, true
		}

		cursor += n
		repetitions++
		if cursor > len(tokens) {
			// an inner pattern claimed more tokens than it was given
			return 0, false
		}
	}
}
