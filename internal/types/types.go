package types

import (
	"fmt"
	"strings"
)

// Severity is the configured importance of a rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(s.String())), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "error":
		*s = SeverityError
	case "warning", "warn":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// ConfigRule is the per-rule section of the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity" toml:"severity" json:"severity"`
}

// Issue represents a lint found in a file, resolved to line/column
// positions for reporting.
type Issue struct {
	Rule        string   `json:"rule"`
	Category    string   `json:"category"`
	Filename    string   `json:"filename"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
	Note        string   `json:"note,omitempty"`
	Start       Position `json:"start"`
	End         Position `json:"end"`
	Severity    Severity `json:"severity"`
	Priority    uint8    `json:"priority"`
}

// Suggestion returns the preferred replacement text, or "" when the issue
// has none.
func (i Issue) Suggestion() string {
	if len(i.Suggestions) == 0 {
		return ""
	}
	return i.Suggestions[0]
}
