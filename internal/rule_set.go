package internal

import (
	"github.com/RustWorks/harper-grammar-checker/internal/document"
	"github.com/RustWorks/harper-grammar-checker/internal/lints"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
)

// LintRule is a named, configurable linter.
type LintRule interface {
	// Check runs the rule on the document and returns its lints.
	Check(doc *document.Document) []tt.Lint

	// Name returns the name of the lint rule.
	Name() string

	Description() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// linterRule adapts a lints.Linter to LintRule.
type linterRule struct {
	name     string
	severity tt.Severity
	linter   lints.Linter
}

func newLinterRule(name string, severity tt.Severity, linter lints.Linter) *linterRule {
	return &linterRule{name: name, severity: severity, linter: linter}
}

func (r *linterRule) Check(doc *document.Document) []tt.Lint {
	return r.linter.Lint(doc)
}

func (r *linterRule) Name() string {
	return r.name
}

func (r *linterRule) Description() string {
	return r.linter.Description()
}

func (r *linterRule) Severity() tt.Severity {
	return r.severity
}

func (r *linterRule) SetSeverity(severity tt.Severity) {
	r.severity = severity
}

func NewAdjectiveOfARule() LintRule {
	return newLinterRule("adjective-of-a", tt.SeverityWarning, lints.AdjectiveOfA{})
}

// NewPhraseRule compiles a configured phrase rule.
func NewPhraseRule(cfg lints.PhraseConfig, severity tt.Severity) (LintRule, error) {
	linter, err := lints.CompilePhrase(cfg)
	if err != nil {
		return nil, err
	}
	return newLinterRule(cfg.Name, severity, linter), nil
}
