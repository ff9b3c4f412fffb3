package types

import "fmt"

// Span is a half-open range [Start, End) of rune offsets into a source buffer.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span [start, end). Reversed bounds are swapped so
// that Start <= End always holds.
func NewSpan(start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Overlaps reports whether the two spans share at least one offset.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Get returns the runes of source denoted by the span. Bounds outside the
// source are clamped, so an invalid span yields an empty slice.
func (s Span) Get(source []rune) []rune {
	start, end := s.Start, s.End
	if start < 0 {
		start = 0
	}
	if end > len(source) {
		end = len(source)
	}
	if start >= end {
		return nil
	}
	return source[start:end]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
