package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
)

const tabWidth = 8

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	infoStyle       = color.New(color.FgHiCyan, color.Bold)
	ruleStyle       = color.New(color.FgYellow, color.Bold)
	fileStyle       = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
)

// Source holds the lines of the text an issue was found in. Lines are in
// NFC form so that issue columns line up with them.
type Source struct {
	Lines []string
}

func NewSource(text string) *Source {
	lines := strings.Split(norm.NFC.String(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Source{Lines: lines}
}

var issueTmpl = template.Must(template.New("issue").Funcs(template.FuncMap{
	"header":              header,
	"snippet":             snippet,
	"underlineAndMessage": underlineAndMessage,
	"suggestions":         suggestions,
	"note":                note,
}).Parse(generalTemplate))

// GenerateFormattedIssue formats a slice of issues into a human-readable string.
func GenerateFormattedIssue(issues []tt.Issue, src *Source) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(buildIssue(issue, src))
	}
	return builder.String()
}

/***** Issue Formatter Builder *****/

type IssueData struct {
	Severity        string
	Rule            string
	Filename        string
	Padding         string
	StartLine       int
	StartColumn     int
	EndLine         int
	EndColumn       int
	MaxLineNumWidth int
	Message         string
	Suggestions     []string
	Note            string
	SnippetLines    []string
}

func buildIssue(issue tt.Issue, src *Source) string {
	maxLineNumWidth := calculateMaxLineNumWidth(issue.End.Line)

	data := IssueData{
		Severity:        issue.Severity.String(),
		Rule:            issue.Rule,
		Filename:        issue.Filename,
		StartLine:       issue.Start.Line,
		StartColumn:     issue.Start.Column,
		EndLine:         issue.End.Line,
		EndColumn:       issue.End.Column,
		Message:         issue.Message,
		Suggestions:     issue.Suggestions,
		Note:            issue.Note,
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
	}
	if src != nil {
		data.SnippetLines = src.Lines
	}

	var buf bytes.Buffer
	if err := issueTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting issue: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(rule string, severity string, maxLineNumWidth int, filename string, startLine int, startColumn int) string {
	var endString string
	switch severity {
	case "ERROR":
		endString = errorStyle.Sprint("error: ")
	case "WARNING":
		endString = warningStyle.Sprint("warning: ")
	case "INFO":
		endString = infoStyle.Sprint("info: ")
	}

	endString += ruleStyle.Sprintf("%s\n", rule)

	padding := strings.Repeat(" ", maxLineNumWidth)
	endString += lineStyle.Sprintf("%s--> ", padding)
	endString += fileStyle.Sprintf("%s:%d:%d", filename, startLine, startColumn)

	return endString
}

func snippet(snippetLines []string, startLine int, endLine int, maxLineNumWidth int, padding string) string {
	var b strings.Builder
	b.WriteString(lineStyle.Sprintf("%s|", padding))

	for i := startLine; i <= endLine; i++ {
		if i-1 < 0 || i-1 >= len(snippetLines) {
			continue
		}
		lineNum := fmt.Sprintf("%*d", maxLineNumWidth, i)
		b.WriteString("\n")
		b.WriteString(lineStyle.Sprintf("%s | ", lineNum))
		b.WriteString(expandTabs(snippetLines[i-1]))
	}

	return b.String()
}

// underlineAndMessage marks the issue under the last snippet line. When the
// issue spans several lines, the mark starts at the beginning of that line.
func underlineAndMessage(message string, padding string, startLine int, endLine int, startColumn int, endColumn int, snippetLines []string) string {
	var b strings.Builder
	b.WriteString(lineStyle.Sprintf("%s| ", padding))

	if !isValidLineRange(startLine, endLine, snippetLines) {
		b.WriteString(messageStyle.Sprint(message))
		return b.String()
	}

	underlineStart := 0
	if startLine == endLine {
		underlineStart = calculateVisualColumn(snippetLines[startLine-1], startColumn)
	}
	underlineEnd := calculateVisualColumn(snippetLines[endLine-1], endColumn)
	underlineLength := max(underlineEnd-underlineStart, 1)

	b.WriteString(strings.Repeat(" ", underlineStart))
	b.WriteString(messageStyle.Sprintf("%s\n", strings.Repeat("~", underlineLength)))

	b.WriteString(lineStyle.Sprintf("%s= ", padding))
	b.WriteString(messageStyle.Sprint(message))

	return b.String()
}

func suggestions(replacements []string, padding string) string {
	lines := make([]string, 0, len(replacements))
	for _, r := range replacements {
		var help string
		if r == "" {
			help = "remove this text"
		} else {
			help = fmt.Sprintf("replace with `%s`", r)
		}
		lines = append(lines, lineStyle.Sprintf("%s= ", padding)+suggestionStyle.Sprint("help: ")+help)
	}
	return strings.Join(lines, "\n")
}

func note(note string) string {
	return suggestionStyle.Sprint("Note: ") + lineStyle.Sprint(note)
}

func isValidLineRange(startLine int, endLine int, snippetLines []string) bool {
	return startLine > 0 &&
		endLine > 0 &&
		startLine <= endLine &&
		startLine <= len(snippetLines) &&
		endLine <= len(snippetLines)
}

func calculateMaxLineNumWidth(endLine int) int {
	return len(fmt.Sprintf("%d", endLine))
}

// calculateVisualColumn returns the display width of the runes before the
// 1-based rune column, expanding tabs and counting wide characters twice.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	i := 1
	for _, ch := range line {
		if i >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn += runewidth.RuneWidth(ch)
		}
		i++
	}
	return visualColumn
}

func expandTabs(line string) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, ch := range line {
		if ch == '\t' {
			spaces := tabWidth - (col % tabWidth)
			b.WriteString(strings.Repeat(" ", spaces))
			col += spaces
			continue
		}
		b.WriteRune(ch)
		col += runewidth.RuneWidth(ch)
	}
	return b.String()
}
