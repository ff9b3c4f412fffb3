package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RustWorks/harper-grammar-checker/internal/token"
)

func TestCurated(t *testing.T) {
	t.Parallel()

	lex := Curated()
	assert.Same(t, lex, Curated())
	assert.Positive(t, lex.Len())

	tests := []struct {
		word string
		want token.Kind
	}{
		{"large", token.Adjective},
		{"Large", token.Adjective},
		{"interesting", token.Adjective},
		{"short", token.Adjective | token.Noun},
		{"beginning", token.Adjective | token.Noun | token.Verb},
		{"much", token.Adjective | token.Adverb},
		{"boring", token.Adjective},
		{"trying", token.Adjective | token.Verb},
		{"of", token.Preposition},
		{"the", token.Determiner},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, lex.Classify(tc.word), tc.word)
	}

	assert.Zero(t, lex.Classify("xyzzy"))
	assert.False(t, lex.Contains("xyzzy"))
	assert.True(t, lex.Contains("BIG"))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	lex, err := Load(strings.NewReader(`
adjective: [Swift, fast]
noun: [swift]
verb: [run]
`))
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())
	assert.Equal(t, token.Adjective|token.Noun, lex.Classify("swift"))
	assert.Equal(t, token.Verb, lex.Classify("RUN"))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("gerund: [running]\n"))
	assert.ErrorContains(t, err, "unknown part of speech")

	_, err = Parse([]byte("whitespace: [x]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("adjective: {not: a list}\n"))
	assert.ErrorContains(t, err, "decode word list")
}

func TestNilLexicon(t *testing.T) {
	t.Parallel()

	var lex *Lexicon
	assert.Zero(t, lex.Classify("large"))
	assert.False(t, lex.Contains("large"))
	assert.Zero(t, lex.Len())
}
