package patterns

import "github.com/RustWorks/harper-grammar-checker/internal/token"

// SequencePattern matches its parts one after another.
type SequencePattern struct {
	parts []Pattern
}

// NewSequence returns a sequence of the given parts.
func NewSequence(parts ...Pattern) *SequencePattern {
	return &SequencePattern{parts: parts}
}

// Then appends p and returns the receiver for chaining.
func (s *SequencePattern) Then(p Pattern) *SequencePattern {
	s.parts = append(s.parts, p)
	return s
}

func (s *SequencePattern) ThenWhitespace() *SequencePattern {
	return s.Then(WhitespacePattern{})
}

// ThenWord appends a case-insensitive match of a single word.
func (s *SequencePattern) ThenWord(word string) *SequencePattern {
	return s.Then(NewWordSet(word))
}

func (s *SequencePattern) ThenAnyWord() *SequencePattern {
	return s.Then(TokenKindPattern{Kind: token.Word})
}

func (s *SequencePattern) ThenIndefiniteArticle() *SequencePattern {
	return s.Then(NewIndefiniteArticle())
}

func (s *SequencePattern) Matches(tokens []token.Token, source []rune) (int, bool) {
	cursor := 0
	for _, part := range s.parts {
		if cursor > len(tokens) {
			return 0, false
		}
		n, ok := part.Matches(tokens[cursor:], source)
		if !ok {
			return 0, false
		}
		cursor += n
	}
	if cursor > len(tokens) {
		return 0, false
	}
	return cursor, true
}

// EitherPattern matches the longest of its alternatives. Ties go to the
// earliest alternative.
type EitherPattern struct {
	alternatives []Pattern
}

func NewEither(alternatives ...Pattern) *EitherPattern {
	return &EitherPattern{alternatives: alternatives}
}

func (e *EitherPattern) Matches(tokens []token.Token, source []rune) (int, bool) {
	best, found := 0, false
	for _, alt := range e.alternatives {
		n, ok := alt.Matches(tokens, source)
		if ok && (!found || n > best) {
			best, found = n, true
		}
	}
	return best, found
}
