package patterns

import (
	"errors"
	"fmt"

	"github.com/RustWorks/harper-grammar-checker/internal/token"
)

// SpecKind names one of the pattern variants that can be described in a
// configuration file.
type SpecKind string

const (
	SpecAny               SpecKind = "any"
	SpecWhitespace        SpecKind = "whitespace"
	SpecWordSet           SpecKind = "word_set"
	SpecIndefiniteArticle SpecKind = "indefinite_article"
	SpecTokenKind         SpecKind = "token_kind"
	SpecInvert            SpecKind = "invert"
	SpecRepeat            SpecKind = "repeat"
	SpecSequence          SpecKind = "sequence"
	SpecEither            SpecKind = "either"
)

var (
	ErrUnknownKind   = errors.New("unknown pattern kind")
	ErrEmptyWordSet  = errors.New("word_set needs at least one word")
	ErrUnknownToken  = errors.New("unknown token capability")
	ErrMissingInner  = errors.New("pattern needs an inner pattern")
	ErrNoItems       = errors.New("pattern needs at least one item")
	ErrNegativeCount = errors.New("repetition count must not be negative")
)

// Spec is the declarative form of a pattern tree. Which fields are read
// depends on Kind:
//
//	word_set    Words
//	token_kind  Token (e.g. "adjective", "whitespace")
//	invert      Inner
//	repeat      Inner, Min
//	sequence    Items
//	either      Items
type Spec struct {
	Kind  SpecKind `yaml:"kind" toml:"kind" json:"kind"`
	Words []string `yaml:"words,omitempty" toml:"words,omitempty" json:"words,omitempty"`
	Token string   `yaml:"token,omitempty" toml:"token,omitempty" json:"token,omitempty"`
	Min   int      `yaml:"min,omitempty" toml:"min,omitempty" json:"min,omitempty"`
	Inner *Spec    `yaml:"inner,omitempty" toml:"inner,omitempty" json:"inner,omitempty"`
	Items []Spec   `yaml:"items,omitempty" toml:"items,omitempty" json:"items,omitempty"`
}

// Compile turns a Spec into a Pattern.
func Compile(spec Spec) (Pattern, error) {
	switch spec.Kind {
	case SpecAny:
		return AnyPattern{}, nil

	case SpecWhitespace:
		return WhitespacePattern{}, nil

	case SpecWordSet:
		if len(spec.Words) == 0 {
			return nil, ErrEmptyWordSet
		}
		return NewWordSet(spec.Words...), nil

	case SpecIndefiniteArticle:
		return NewIndefiniteArticle(), nil

	case SpecTokenKind:
		kind, ok := token.ParseKind(spec.Token)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownToken, spec.Token)
		}
		return TokenKindPattern{Kind: kind}, nil

	case SpecInvert:
		inner, err := compileInner(spec)
		if err != nil {
			return nil, err
		}
		return NewInvert(inner), nil

	case SpecRepeat:
		if spec.Min < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeCount, spec.Min)
		}
		inner, err := compileInner(spec)
		if err != nil {
			return nil, err
		}
		return NewRepeatingPattern(inner, spec.Min), nil

	case SpecSequence:
		items, err := compileItems(spec)
		if err != nil {
			return nil, err
		}
		return NewSequence(items...), nil

	case SpecEither:
		items, err := compileItems(spec)
		if err != nil {
			return nil, err
		}
		return NewEither(items...), nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
	}
}

// CompileSequence compiles a list of specs into one sequence pattern.
func CompileSequence(specs []Spec) (Pattern, error) {
	return Compile(Spec{Kind: SpecSequence, Items: specs})
}

func compileInner(spec Spec) (Pattern, error) {
	if spec.Inner == nil {
		return nil, fmt.Errorf("%s: %w", spec.Kind, ErrMissingInner)
	}
	inner, err := Compile(*spec.Inner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Kind, err)
	}
	return inner, nil
}

func compileItems(spec Spec) ([]Pattern, error) {
	if len(spec.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", spec.Kind, ErrNoItems)
	}
	items := make([]Pattern, 0, len(spec.Items))
	for i, item := range spec.Items {
		p, err := Compile(item)
		if err != nil {
			return nil, fmt.Errorf("%s item %d: %w", spec.Kind, i, err)
		}
		items = append(items, p)
	}
	return items, nil
}
