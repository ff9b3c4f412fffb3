package token

import "strings"

// Kind is the capability set of a token. A token may carry several
// capabilities at once (a word can be a noun, a verb and an adjective),
// so callers query individual bits instead of switching on a single tag.
type Kind uint32

const (
	Word Kind = 1 << iota
	Space
	Newline
	Punctuation
	Number
	Noun
	Verb
	Adjective
	Adverb
	Determiner
	Preposition
	Pronoun
	Conjunction
)

// Whitespace is the union of the horizontal and vertical whitespace kinds.
const Whitespace = Space | Newline

// PartsOfSpeech is the union of every morphological capability.
const PartsOfSpeech = Noun | Verb | Adjective | Adverb | Determiner | Preposition | Pronoun | Conjunction

var kindNames = []struct {
	kind Kind
	name string
}{
	{Word, "word"},
	{Space, "space"},
	{Newline, "newline"},
	{Punctuation, "punctuation"},
	{Number, "number"},
	{Noun, "noun"},
	{Verb, "verb"},
	{Adjective, "adjective"},
	{Adverb, "adverb"},
	{Determiner, "determiner"},
	{Preposition, "preposition"},
	{Pronoun, "pronoun"},
	{Conjunction, "conjunction"},
}

// Has reports whether every capability in mask is present.
func (k Kind) Has(mask Kind) bool {
	return mask != 0 && k&mask == mask
}

// Any reports whether at least one capability in mask is present.
func (k Kind) Any(mask Kind) bool {
	return k&mask != 0
}

func (k Kind) IsWord() bool        { return k.Has(Word) }
func (k Kind) IsSpace() bool       { return k.Has(Space) }
func (k Kind) IsNewline() bool     { return k.Has(Newline) }
func (k Kind) IsWhitespace() bool  { return k.Any(Whitespace) }
func (k Kind) IsPunctuation() bool { return k.Has(Punctuation) }
func (k Kind) IsNumber() bool      { return k.Has(Number) }
func (k Kind) IsNoun() bool        { return k.Has(Noun) }
func (k Kind) IsVerb() bool        { return k.Has(Verb) }
func (k Kind) IsAdjective() bool   { return k.Has(Adjective) }
func (k Kind) IsAdverb() bool      { return k.Has(Adverb) }
func (k Kind) IsDeterminer() bool  { return k.Has(Determiner) }
func (k Kind) IsPreposition() bool { return k.Has(Preposition) }

// ParseKind resolves a capability name such as "adjective". Matching is
// case-insensitive; "whitespace" yields the Space|Newline union.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "whitespace" {
		return Whitespace, true
	}
	for _, kn := range kindNames {
		if kn.name == name {
			return kn.kind, true
		}
	}
	return 0, false
}

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var names []string
	for _, kn := range kindNames {
		if k.Has(kn.kind) {
			names = append(names, kn.name)
		}
	}
	return strings.Join(names, "|")
}
