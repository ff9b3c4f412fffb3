package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/RustWorks/harper-grammar-checker/internal/cache"
	"github.com/RustWorks/harper-grammar-checker/internal/document"
	"github.com/RustWorks/harper-grammar-checker/internal/lints"
	"github.com/RustWorks/harper-grammar-checker/internal/nolint"
	"github.com/RustWorks/harper-grammar-checker/internal/trie"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
)

// ErrDuplicateRule is returned when a configured phrase rule reuses the
// name of another rule.
var ErrDuplicateRule = errors.New("duplicate rule name")

// ErrRulePanicked wraps a panic raised while a rule checked a document.
var ErrRulePanicked = errors.New("rule panicked")

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredGlobs []string
	ignoredDirs  *trie.PathTrie
	rules        map[string]LintRule
	phrases      []byte // fingerprint of the phrase configuration
	cache        cache.Cache
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCache stores results in c, keyed by content and active rules.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(e *Engine) {
		e.cache = c
		e.cacheTTL = ttl
	}
}

type ruleConstructor func() LintRule

var allRuleConstructors = map[string]ruleConstructor{
	"adjective-of-a": NewAdjectiveOfARule,
}

// NewEngine creates a new lint engine. rules adjusts the severity of
// built-in and phrase rules by name; phrases adds pattern-driven rules.
func NewEngine(rules map[string]tt.ConfigRule, phrases []lints.PhraseConfig, opts ...Option) (*Engine, error) {
	engine := &Engine{
		ignoredDirs: trie.New(),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(engine)
	}

	engine.registerDefaultRules()
	if err := engine.registerPhrases(phrases, rules); err != nil {
		return nil, err
	}
	engine.applyRules(rules)

	fingerprint, err := json.Marshal(phrases)
	if err != nil {
		return nil, fmt.Errorf("fingerprint phrase rules: %w", err)
	}
	engine.phrases = fingerprint

	return engine, nil
}

func (e *Engine) registerDefaultRules() {
	e.rules = make(map[string]LintRule, len(allRuleConstructors))
	for key, newRuleCstr := range allRuleConstructors {
		e.rules[key] = newRuleCstr()
	}
}

func (e *Engine) registerPhrases(phrases []lints.PhraseConfig, rules map[string]tt.ConfigRule) error {
	for _, cfg := range phrases {
		if _, exists := e.rules[cfg.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateRule, cfg.Name)
		}
		severity := tt.SeverityWarning
		if rule, ok := rules[cfg.Name]; ok {
			severity = rule.Severity
		}
		rule, err := NewPhraseRule(cfg, severity)
		if err != nil {
			return fmt.Errorf("invalid phrase rule: %w", err)
		}
		e.rules[cfg.Name] = rule
	}
	return nil
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	for key, rule := range rules {
		r := e.findRule(key)
		if r == nil {
			e.logger.Warn("Unknown rule in configuration", zap.String("rule", key))
			continue
		}
		r.SetSeverity(rule.Severity)
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
	}
}

func (e *Engine) findRule(name string) LintRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// Rules returns every registered rule, sorted by name.
func (e *Engine) Rules() []LintRule {
	rules := make([]LintRule, 0, len(e.rules))
	for _, rule := range e.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Name() < rules[j].Name()
	})
	return rules
}

func (e *Engine) activeRules() []LintRule {
	var active []LintRule
	for _, rule := range e.Rules() {
		if e.ignoredRules[rule.Name()] || rule.Severity() == tt.SeverityOff {
			continue
		}
		active = append(active, rule)
	}
	return active
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath skips files matching the glob pattern, or any file below it
// when the pattern names a directory.
func (e *Engine) IgnorePath(path string) {
	clean := filepath.Clean(path)
	e.ignoredGlobs = append(e.ignoredGlobs, clean)
	if !hasGlobMeta(clean) {
		e.ignoredDirs.Insert(clean)
	}
}

func (e *Engine) isIgnoredPath(filename string) bool {
	clean := filepath.Clean(filename)
	if e.ignoredDirs.Contains(clean) {
		return true
	}
	for _, pattern := range e.ignoredGlobs {
		if matched, _ := filepath.Match(pattern, clean); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, filepath.Base(clean)); matched {
			return true
		}
	}
	return false
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, `*?[\`)
}

// Run reads filename and lints its content.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return e.RunSource(filename, content)
}

// RunSource lints source and attributes the issues to filename.
// Lints from all active rules are merged; where they overlap, the one
// with the higher priority is kept. Issues suppressed by a nolint
// directive in the source are dropped.
func (e *Engine) RunSource(filename string, source []byte) ([]tt.Issue, error) {
	active := e.activeRules()
	key := e.cacheKey(active, source)

	if issues, ok := e.cached(key, filename); ok {
		return issues, nil
	}

	doc := document.NewPlainEnglish(string(source))
	issues := e.toIssues(filename, doc, e.check(doc, active))
	issues = e.filterNolint(string(doc.Source()), issues)

	e.store(key, issues)
	return issues, nil
}

type ruleLint struct {
	rule LintRule
	lint tt.Lint
}

// check runs every rule concurrently. Rules never mutate the document, so
// the only synchronization is collecting the results.
func (e *Engine) check(doc *document.Document, rules []LintRule) []ruleLint {
	results := make([][]tt.Lint, len(rules))

	var g errgroup.Group
	for i, rule := range rules {
		g.Go(func() (err error) {
			// a panicking rule loses its own lints, not the whole run
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %s: %v", ErrRulePanicked, rule.Name(), r)
				}
			}()
			results[i] = rule.Check(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Error("Rule failed", zap.Error(err))
	}

	var all []ruleLint
	for i, lints := range results {
		for _, lint := range lints {
			all = append(all, ruleLint{rule: rules[i], lint: lint})
		}
	}

	return tt.RemoveOverlapsFunc(all, func(rl ruleLint) tt.Lint { return rl.lint })
}

func (e *Engine) toIssues(filename string, doc *document.Document, found []ruleLint) []tt.Issue {
	index := tt.NewLineIndex(doc.Source())

	issues := make([]tt.Issue, 0, len(found))
	for _, rl := range found {
		original := doc.SpanContent(rl.lint.Span)

		suggestions := make([]string, 0, len(rl.lint.Suggestions))
		for _, s := range rl.lint.Suggestions {
			suggestions = append(suggestions, string(s.Replacement(original)))
		}

		issues = append(issues, tt.Issue{
			Rule:        rl.rule.Name(),
			Category:    rl.lint.Kind.String(),
			Filename:    filename,
			Message:     rl.lint.Message,
			Suggestions: suggestions,
			Start:       index.Position(rl.lint.Span.Start),
			End:         index.Position(rl.lint.Span.End),
			Severity:    rl.rule.Severity(),
			Priority:    rl.lint.Priority,
		})
	}
	return issues
}

func (e *Engine) filterNolint(source string, issues []tt.Issue) []tt.Issue {
	manager := nolint.Parse(source)
	if manager.Empty() {
		return issues
	}

	kept := issues[:0]
	for _, issue := range issues {
		if manager.IsNolint(issue.Start.Line, issue.Rule) {
			e.logger.Debug("Issue suppressed by nolint directive",
				zap.String("rule", issue.Rule), zap.String("position", issue.Start.String()))
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}

func (e *Engine) cacheKey(active []LintRule, source []byte) string {
	if e.cache == nil {
		return ""
	}
	var rules strings.Builder
	for _, rule := range active {
		fmt.Fprintf(&rules, "%s=%s;", rule.Name(), rule.Severity())
	}
	return cache.Key([]byte(rules.String()), e.phrases, source)
}

func (e *Engine) cached(key, filename string) ([]tt.Issue, bool) {
	if e.cache == nil {
		return nil, false
	}
	data, ok := e.cache.Get(key)
	if !ok {
		return nil, false
	}

	var issues []tt.Issue
	if err := msgpack.Unmarshal(data, &issues); err != nil {
		e.logger.Warn("Discarding unreadable cache entry", zap.String("file", filename), zap.Error(err))
		_ = e.cache.Delete(key)
		return nil, false
	}
	for i := range issues {
		issues[i].Filename = filename
	}
	return issues, true
}

func (e *Engine) store(key string, issues []tt.Issue) {
	if e.cache == nil {
		return
	}
	data, err := msgpack.Marshal(issues)
	if err != nil {
		e.logger.Warn("Failed to encode issues for cache", zap.Error(err))
		return
	}
	if err := e.cache.Set(key, data, e.cacheTTL); err != nil {
		e.logger.Warn("Failed to store issues in cache", zap.Error(err))
	}
}
