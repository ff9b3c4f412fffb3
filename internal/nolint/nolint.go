// Package nolint finds suppression directives in prose sources.
//
// A directive is an HTML comment, so it stays invisible in rendered
// Markdown:
//
//	<!-- nolint -->                      every rule
//	<!-- nolint:adjective-of-a,other --> only the listed rules
package nolint

import (
	"errors"
	"regexp"
	"strings"
)

const nolintPrefix = "nolint"

var directiveRe = regexp.MustCompile(`<!--\s*(nolint[^>]*?)\s*-->`)

// Manager records which lines are suppressed for which rules.
type Manager struct {
	scopes []nolintScope
}

// nolintScope is an inclusive range of 1-based lines.
type nolintScope struct {
	rules map[string]struct{}
	start int
	end   int
}

// Parse scans source for directives. Each directive applies to:
//   - its own line, when text precedes it on that line;
//   - the whole file, when it stands alone on its line and nothing but
//     blank lines and other directives precede it;
//   - its own line and the block of non-blank lines right after it,
//     otherwise.
func Parse(source string) *Manager {
	lines := strings.Split(source, "\n")
	manager := &Manager{}
	preamble := true

	for i, line := range lines {
		lineNo := i + 1
		matches := directiveRe.FindAllStringSubmatchIndex(line, -1)

		for _, m := range matches {
			rules, err := parseDirective(line[m[2]:m[3]])
			if err != nil {
				// ignore malformed directives
				continue
			}
			ns := nolintScope{rules: rules, start: lineNo, end: lineNo}

			switch {
			case strings.TrimSpace(line[:m[0]]) != "":
				// inline: only this line, even at the top of the file
			case preamble:
				ns.start, ns.end = 1, len(lines)
			default:
				ns.end = blockEnd(lines, i)
			}
			manager.scopes = append(manager.scopes, ns)
		}

		if preamble && strings.TrimSpace(directiveRe.ReplaceAllString(line, "")) != "" {
			preamble = false
		}
	}
	return manager
}

// parseDirective parses the text inside the comment delimiters.
func parseDirective(text string) (map[string]struct{}, error) {
	if !strings.HasPrefix(text, nolintPrefix) {
		return nil, errors.New("invalid nolint directive")
	}
	rest := text[len(nolintPrefix):]

	// Either a bare "nolint" or a colon followed by rule names.
	if rest == "" {
		return map[string]struct{}{}, nil
	}
	if rest[0] != ':' {
		return nil, errors.New("invalid nolint directive format")
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		return nil, errors.New("invalid nolint directive: no rules specified after colon")
	}
	return parseIgnoreRuleNames(rest), nil
}

func parseIgnoreRuleNames(text string) map[string]struct{} {
	rulesMap := make(map[string]struct{})
	for _, rule := range strings.Split(text, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rulesMap[rule] = struct{}{}
		}
	}
	return rulesMap
}

// blockEnd returns the 1-based number of the last line in the run of
// non-blank lines following index i, or i+1 when the next line is blank.
func blockEnd(lines []string, i int) int {
	end := i + 1
	for j := i + 1; j < len(lines) && strings.TrimSpace(lines[j]) != ""; j++ {
		end = j + 1
	}
	return end
}

// IsNolint reports whether ruleName is suppressed on the given line.
func (m *Manager) IsNolint(line int, ruleName string) bool {
	if m == nil {
		return false
	}
	for _, ns := range m.scopes {
		if line < ns.start || line > ns.end {
			continue
		}
		// no rule list means every rule
		if len(ns.rules) == 0 {
			return true
		}
		if _, exists := ns.rules[ruleName]; exists {
			return true
		}
	}
	return false
}

// Empty reports whether no directive was found.
func (m *Manager) Empty() bool {
	return m == nil || len(m.scopes) == 0
}
