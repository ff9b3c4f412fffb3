package document

import (
	"unicode"

	"github.com/RustWorks/harper-grammar-checker/internal/token"
	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

// Lex splits source into word, number, whitespace and punctuation tokens.
// Word tokens carry only the Word capability; classification happens in
// New. Every rune of source belongs to exactly one token.
func Lex(source []rune) []token.Token {
	var tokens []token.Token
	for cursor := 0; cursor < len(source); {
		end, kind := scan(source, cursor)
		tokens = append(tokens, token.Token{
			Span: types.Span{Start: cursor, End: end},
			Kind: kind,
		})
		cursor = end
	}
	return tokens
}

func scan(source []rune, start int) (int, token.Kind) {
	r := source[start]
	switch {
	case r == '\n' || r == '\r' && peek(source, start+1) == '\n':
		return scanNewlines(source, start), token.Newline
	case unicode.IsSpace(r):
		return scanWhile(source, start, isInlineSpace), token.Space
	case unicode.IsLetter(r):
		return scanWord(source, start), token.Word
	case unicode.IsDigit(r):
		return scanNumber(source, start), token.Number
	default:
		return start + 1, token.Punctuation
	}
}

func scanNewlines(source []rune, start int) int {
	i := start
	for i < len(source) {
		switch {
		case source[i] == '\n':
			i++
		case source[i] == '\r' && peek(source, i+1) == '\n':
			i += 2
		default:
			return i
		}
	}
	return i
}

// scanWord consumes letters, digits and combining marks. An apostrophe is
// part of the word only when a letter follows it ("isn't", "Rust's").
func scanWord(source []rune, start int) int {
	i := start + 1
	for i < len(source) {
		r := source[i]
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			i++
		case isApostrophe(r) && unicode.IsLetter(peek(source, i+1)):
			i += 2
		default:
			return i
		}
	}
	return i
}

// scanNumber consumes digits with single inner separators ("4,000", "3.14").
func scanNumber(source []rune, start int) int {
	i := start + 1
	for i < len(source) {
		r := source[i]
		switch {
		case unicode.IsDigit(r):
			i++
		case (r == '.' || r == ',') && unicode.IsDigit(peek(source, i+1)):
			i += 2
		default:
			return i
		}
	}
	return i
}

func scanWhile(source []rune, start int, pred func(rune) bool) int {
	i := start
	for i < len(source) && pred(source[i]) {
		if source[i] == '\r' && peek(source, i+1) == '\n' {
			break
		}
		i++
	}
	return i
}

func isInlineSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func peek(source []rune, i int) rune {
	if i < 0 || i >= len(source) {
		return 0
	}
	return source[i]
}
