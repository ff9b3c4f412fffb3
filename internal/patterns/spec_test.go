package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		spec  Spec
		text  string
		wantN int
	}{
		{"any", Spec{Kind: SpecAny}, "x", 1},
		{"whitespace", Spec{Kind: SpecWhitespace}, " \nx", 2},
		{"word set", Spec{Kind: SpecWordSet, Words: []string{"Of"}}, "of", 1},
		{"indefinite article", Spec{Kind: SpecIndefiniteArticle}, "An", 1},
		{"token kind", Spec{Kind: SpecTokenKind, Token: "Adjective"}, "large", 1},
		{"token kind union", Spec{Kind: SpecTokenKind, Token: "whitespace"}, "\n", 1},
		{"invert", Spec{Kind: SpecInvert, Inner: &Spec{Kind: SpecIndefiniteArticle}}, "the", 1},
		{"repeat", Spec{Kind: SpecRepeat, Min: 1, Inner: &Spec{Kind: SpecAny}}, "a b", 3},
		{
			"sequence",
			Spec{Kind: SpecSequence, Items: []Spec{
				{Kind: SpecWordSet, Words: []string{"of"}},
				{Kind: SpecWhitespace},
				{Kind: SpecIndefiniteArticle},
			}},
			"of a deal",
			3,
		},
		{
			"either",
			Spec{Kind: SpecEither, Items: []Spec{
				{Kind: SpecWordSet, Words: []string{"the"}},
				{Kind: SpecIndefiniteArticle},
			}},
			"a",
			1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := Compile(tc.spec)
			require.NoError(t, err)

			tokens, source := tokenize(tc.text)
			n, ok := p.Matches(tokens, source)
			assert.True(t, ok)
			assert.Equal(t, tc.wantN, n)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"unknown kind", Spec{Kind: "regex"}, ErrUnknownKind},
		{"empty word set", Spec{Kind: SpecWordSet}, ErrEmptyWordSet},
		{"unknown token", Spec{Kind: SpecTokenKind, Token: "gerund"}, ErrUnknownToken},
		{"invert without inner", Spec{Kind: SpecInvert}, ErrMissingInner},
		{"repeat without inner", Spec{Kind: SpecRepeat}, ErrMissingInner},
		{"negative repeat", Spec{Kind: SpecRepeat, Min: -1, Inner: &Spec{Kind: SpecAny}}, ErrNegativeCount},
		{"empty sequence", Spec{Kind: SpecSequence}, ErrNoItems},
		{"empty either", Spec{Kind: SpecEither}, ErrNoItems},
		{
			"nested error",
			Spec{Kind: SpecSequence, Items: []Spec{
				{Kind: SpecAny},
				{Kind: SpecInvert, Inner: &Spec{Kind: SpecWordSet}},
			}},
			ErrEmptyWordSet,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := Compile(tc.spec)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, p)
		})
	}
}

func TestSpecFromYAML(t *testing.T) {
	t.Parallel()

	const doc = `
- kind: word_set
  words: [too, how]
- kind: whitespace
- kind: token_kind
  token: adjective
- kind: whitespace
- kind: word_set
  words: [of]
- kind: whitespace
- kind: indefinite_article
`
	var specs []Spec
	require.NoError(t, yaml.Unmarshal([]byte(doc), &specs))
	require.Len(t, specs, 7)

	p, err := CompileSequence(specs)
	require.NoError(t, err)

	tokens, source := tokenize("too large of a batch")
	n, ok := p.Matches(tokens, source)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	tokens, source = tokenize("too large a batch")
	_, ok = p.Matches(tokens, source)
	assert.False(t, ok)
}
