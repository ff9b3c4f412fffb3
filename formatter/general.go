package formatter

const generalTemplate = `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .Padding}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines}}
{{- if .Suggestions}}
{{suggestions .Suggestions .Padding}}
{{- end}}
{{- if .Note}}
{{note .Note}}
{{- end}}

`
