package lints

import (
	"errors"
	"fmt"

	"github.com/RustWorks/harper-grammar-checker/internal/document"
	"github.com/RustWorks/harper-grammar-checker/internal/patterns"
	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

const defaultPhrasePriority = 31

var (
	ErrMissingName    = errors.New("phrase rule needs a name")
	ErrMissingMessage = errors.New("phrase rule needs a message")
	ErrMissingPattern = errors.New("phrase rule needs a pattern")
)

// PhraseConfig declares a pattern-driven rule in a configuration file.
type PhraseConfig struct {
	Name        string          `yaml:"name" toml:"name" json:"name"`
	Description string          `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Message     string          `yaml:"message" toml:"message" json:"message"`
	Kind        *types.LintKind `yaml:"kind,omitempty" toml:"kind,omitempty" json:"kind,omitempty"`
	Priority    uint8           `yaml:"priority,omitempty" toml:"priority,omitempty" json:"priority,omitempty"`
	Replacement *string         `yaml:"replacement,omitempty" toml:"replacement,omitempty" json:"replacement,omitempty"`
	Pattern     []patterns.Spec `yaml:"pattern" toml:"pattern" json:"pattern"`
}

// PhraseRule reports every non-overlapping match of a pattern.
type PhraseRule struct {
	description string
	message     string
	kind        types.LintKind
	priority    uint8
	replacement []rune
	replace     bool
	pattern     patterns.Pattern
}

// NewPhraseRule builds a rule from an already compiled pattern.
// A nil replacement means the lint carries no suggestion; an empty one
// suggests deleting the match.
func NewPhraseRule(pattern patterns.Pattern, message string, replacement *string) *PhraseRule {
	r := &PhraseRule{
		description: message,
		message:     message,
		kind:        types.LintKindWordChoice,
		priority:    defaultPhrasePriority,
		pattern:     pattern,
	}
	if replacement != nil {
		r.replace = true
		r.replacement = []rune(*replacement)
	}
	return r
}

// CompilePhrase validates cfg and compiles its pattern.
func CompilePhrase(cfg PhraseConfig) (*PhraseRule, error) {
	switch {
	case cfg.Name == "":
		return nil, ErrMissingName
	case cfg.Message == "":
		return nil, fmt.Errorf("%s: %w", cfg.Name, ErrMissingMessage)
	case len(cfg.Pattern) == 0:
		return nil, fmt.Errorf("%s: %w", cfg.Name, ErrMissingPattern)
	}

	pattern, err := patterns.CompileSequence(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Name, err)
	}

	r := NewPhraseRule(pattern, cfg.Message, cfg.Replacement)
	if cfg.Kind != nil {
		r.kind = *cfg.Kind
	}
	if cfg.Priority != 0 {
		r.priority = cfg.Priority
	}
	if cfg.Description != "" {
		r.description = cfg.Description
	}
	return r, nil
}

func (r *PhraseRule) Description() string {
	return r.description
}

func (r *PhraseRule) Lint(doc *document.Document) []types.Lint {
	var lints []types.Lint

	tokens := doc.Tokens()
	for i := 0; i < len(tokens); {
		n, ok := r.pattern.Matches(tokens[i:], doc.Source())
		if !ok || n == 0 {
			i++
			continue
		}

		if i+n > len(tokens) {
			n = len(tokens) - i
		}
		matched := tokens[i : i+n]
		span := types.Span{Start: matched[0].Span.Start, End: matched[len(matched)-1].Span.End}

		lint := types.Lint{
			Span:     span,
			Kind:     r.kind,
			Message:  r.message,
			Priority: r.priority,
		}
		if r.replace {
			if len(r.replacement) == 0 {
				lint.Suggestions = []types.Suggestion{types.Remove()}
			} else {
				lint.Suggestions = []types.Suggestion{types.ReplaceWith(r.replacement)}
			}
		}
		lints = append(lints, lint)

		i += n
	}

	return lints
}
