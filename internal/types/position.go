package types

import (
	"fmt"
	"sort"
)

// Position is a resolved location inside a source buffer.
// Line and Column are 1-based, Offset is a rune offset.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps rune offsets to line/column positions.
type LineIndex struct {
	starts []int
}

// NewLineIndex records the offset at which every line of source begins.
func NewLineIndex(source []rune) LineIndex {
	starts := []int{0}
	for i, r := range source {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return LineIndex{starts: starts}
}

// Position resolves a rune offset. Offsets past the end resolve onto the
// last line.
func (li LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Position{
		Offset: offset,
		Line:   line + 1,
		Column: offset - li.starts[line] + 1,
	}
}

// Lines returns the number of lines in the indexed source.
func (li LineIndex) Lines() int {
	return len(li.starts)
}
