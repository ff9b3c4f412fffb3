// Package internal provides the prose linting engine.
//
// The engine keeps a registry of named rules. Each rule wraps a
// lints.Linter with a severity that configuration may change or turn off.
// Built-in rules are registered by name, and phrase rules are compiled from
// configuration into token patterns.
//
// Key components:
//
// Engine: builds a document from source text, runs every enabled rule
// concurrently, keeps the highest-priority lint wherever two overlap, and
// converts the result into Issues with line and column positions. Issues
// covered by a <!-- nolint --> directive in the source are dropped.
//
// LintRule: a named, severity-carrying rule.
//
// Watcher: re-lints prose files as they change on disk.
//
// Usage:
//
//	engine, err := internal.NewEngine(rules, phrases, internal.WithLogger(logger))
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("README.md")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, issue := range issues {
//	    fmt.Printf("%s: %s\n", issue.Start, issue.Message)
//	}
package internal
