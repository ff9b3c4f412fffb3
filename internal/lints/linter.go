package lints

import (
	"github.com/RustWorks/harper-grammar-checker/internal/document"
	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

// Linter inspects a document and reports lints.
//
// Lint must be a pure function of the document's content: it may not
// mutate the document or keep state between calls, and it returns lints
// in document order. Overlapping lints are allowed; resolving them is up
// to the caller, guided by Lint.Priority.
type Linter interface {
	Lint(doc *document.Document) []types.Lint
	Description() string
}
