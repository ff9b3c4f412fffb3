// Package lexicon classifies words into part-of-speech capabilities using a
// literal word list.
package lexicon

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/RustWorks/harper-grammar-checker/internal/token"
)

//go:embed words.yaml
var curatedWords []byte

// Lexicon maps lower-cased words to their part-of-speech capabilities.
// It is immutable once built and safe for concurrent use.
type Lexicon struct {
	words map[string]token.Kind
}

// curated is built once on first use and never modified afterwards.
var curated = sync.OnceValues(func() (*Lexicon, error) {
	return Parse(curatedWords)
})

// Curated returns the word list embedded in the binary.
func Curated() *Lexicon {
	lex, err := curated()
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded word list is invalid: %v", err))
	}
	return lex
}

// Load reads a YAML word list from r. The document maps part-of-speech
// names (see token.ParseKind) to lists of words.
func Load(r io.Reader) (*Lexicon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return Parse(data)
}

// Parse builds a Lexicon from YAML data.
func Parse(data []byte) (*Lexicon, error) {
	var sections map[string][]string
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode word list: %w", err)
	}

	lex := &Lexicon{words: make(map[string]token.Kind)}
	for name, words := range sections {
		kind, ok := token.ParseKind(name)
		if !ok || !kind.Any(token.PartsOfSpeech) {
			return nil, fmt.Errorf("unknown part of speech %q", name)
		}
		for _, w := range words {
			lex.words[token.Lower(w)] |= kind
		}
	}
	return lex, nil
}

// Classify returns the capabilities of word. Unknown words yield 0.
func (l *Lexicon) Classify(word string) token.Kind {
	if l == nil {
		return 0
	}
	return l.words[token.Lower(word)]
}

// Contains reports whether word appears in the list.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[token.Lower(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}
