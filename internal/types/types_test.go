package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSpan(t *testing.T) {
	t.Parallel()

	s := NewSpan(7, 3)
	assert.Equal(t, Span{Start: 3, End: 7}, s)
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Empty())
	assert.True(t, NewSpan(2, 2).Empty())
	assert.Equal(t, "3..7", s.String())

	assert.Equal(t, Span{Start: 1, End: 9}, Span{Start: 3, End: 9}.Cover(Span{Start: 1, End: 4}))

	source := []rune("héllo world")
	assert.Equal(t, "héllo", string(Span{Start: 0, End: 5}.Get(source)))
	assert.Equal(t, "world", string(Span{Start: 6, End: 50}.Get(source)))
	assert.Empty(t, Span{Start: 8, End: 2}.Get(source))
	assert.Empty(t, Span{Start: -3, End: 0}.Get(source))
}

func TestSpanOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{0, 3}, Span{4, 6}, false},
		{"adjacent", Span{0, 3}, Span{3, 6}, false},
		{"partial", Span{0, 4}, Span{3, 6}, true},
		{"contained", Span{0, 10}, Span{3, 6}, true},
		{"identical", Span{2, 5}, Span{2, 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestSuggestionApply(t *testing.T) {
	t.Parallel()

	source := []rune("too large of a batch")
	span := Span{Start: 4, End: 14}

	tests := []struct {
		name       string
		suggestion Suggestion
		want       string
	}{
		{"replace", ReplaceWithString("large a"), "too large a batch"},
		{"remove", Remove(), "too  batch"},
		{"insert after", InsertAfter([]rune(" nice")), "too large of a nice batch"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, string(tc.suggestion.Apply(span, source)))
		})
	}

	assert.Equal(t, "too large of a batch", string(source), "source must not change")
	assert.Equal(t, "too large of a batchX", string(InsertAfter([]rune("X")).Apply(Span{Start: 20, End: 99}, source)))
}

func TestSuggestionReplacement(t *testing.T) {
	t.Parallel()

	original := []rune("of a")
	assert.Equal(t, "a", string(ReplaceWithString("a").Replacement(original)))
	assert.Empty(t, Remove().Replacement(original))
	assert.Equal(t, "of a!", string(InsertAfter([]rune("!")).Replacement(original)))
	assert.Equal(t, "of a", string(original))
}

func TestSuggestionCopiesText(t *testing.T) {
	t.Parallel()

	text := []rune("abc")
	s := ReplaceWith(text)
	text[0] = 'X'
	assert.Equal(t, "abc", string(s.Text))
}

func TestSuggestionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Replace with: "large a"`, ReplaceWithString("large a").String())
	assert.Equal(t, "Remove error", Remove().String())
	assert.Equal(t, `Insert "!"`, InsertAfter([]rune("!")).String())
}

func TestDedupSuggestions(t *testing.T) {
	t.Parallel()

	got := DedupSuggestions([]Suggestion{
		ReplaceWithString("big a"),
		ReplaceWithString("big  a"),
		ReplaceWithString("big a"),
		Remove(),
		Remove(),
	})
	assert.Equal(t, []Suggestion{ReplaceWithString("big a"), ReplaceWithString("big  a"), Remove()}, got)
	assert.Empty(t, DedupSuggestions(nil))
}

func TestSortLints(t *testing.T) {
	t.Parallel()

	lints := []Lint{
		{Span: Span{10, 12}, Message: "late"},
		{Span: Span{0, 3}, Priority: 1, Message: "low"},
		{Span: Span{0, 5}, Priority: 9, Message: "high"},
		{Span: Span{0, 8}, Priority: 9, Message: "high long"},
	}
	SortLints(lints)

	var got []string
	for _, l := range lints {
		got = append(got, l.Message)
	}
	assert.Equal(t, []string{"high long", "high", "low", "late"}, got)
}

func TestRemoveOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lints []Lint
		want  []string
	}{
		{
			name:  "disjoint kept",
			lints: []Lint{{Span: Span{5, 8}, Message: "b"}, {Span: Span{0, 3}, Message: "a"}},
			want:  []string{"a", "b"},
		},
		{
			name:  "higher priority wins",
			lints: []Lint{{Span: Span{0, 10}, Priority: 10, Message: "wide"}, {Span: Span{2, 5}, Priority: 50, Message: "narrow"}},
			want:  []string{"narrow"},
		},
		{
			name:  "equal priority keeps earlier",
			lints: []Lint{{Span: Span{3, 9}, Message: "second"}, {Span: Span{0, 5}, Message: "first"}},
			want:  []string{"first"},
		},
		{
			name:  "equal start keeps longer",
			lints: []Lint{{Span: Span{0, 3}, Message: "short"}, {Span: Span{0, 6}, Message: "long"}},
			want:  []string{"long"},
		},
		{
			name:  "identical spans",
			lints: []Lint{{Span: Span{1, 4}, Message: "x"}, {Span: Span{1, 4}, Message: "y"}},
			want:  []string{"x"},
		},
		{
			name:  "chain",
			lints: []Lint{{Span: Span{0, 4}, Priority: 5, Message: "a"}, {Span: Span{3, 7}, Priority: 9, Message: "b"}, {Span: Span{6, 9}, Priority: 5, Message: "c"}},
			want:  []string{"b"},
		},
		{
			name:  "identical empty spans",
			lints: []Lint{{Span: Span{4, 4}, Priority: 1, Message: "low"}, {Span: Span{4, 4}, Priority: 2, Message: "high"}},
			want:  []string{"high"},
		},
		{
			name:  "distinct empty spans",
			lints: []Lint{{Span: Span{4, 4}, Message: "x"}, {Span: Span{5, 5}, Message: "y"}},
			want:  []string{"x", "y"},
		},
		{
			name: "empty",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got []string
			for _, l := range RemoveOverlaps(tc.lints) {
				got = append(got, l.Message)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLintKindText(t *testing.T) {
	t.Parallel()

	text, err := LintKindWordChoice.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "WordChoice", string(text))

	var k LintKind
	require.NoError(t, k.UnmarshalText([]byte("wordchoice")))
	assert.Equal(t, LintKindWordChoice, k)
	assert.Error(t, k.UnmarshalText([]byte("grammar")))
	assert.Equal(t, "LintKind(42)", LintKind(42).String())
}

func TestSeverityText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "WARNING", SeverityWarning.String())
	text, err := SeverityError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(text))

	var rule ConfigRule
	require.NoError(t, yaml.Unmarshal([]byte("severity: warn\n"), &rule))
	assert.Equal(t, SeverityWarning, rule.Severity)
	require.NoError(t, yaml.Unmarshal([]byte("severity: OFF\n"), &rule))
	assert.Equal(t, SeverityOff, rule.Severity)
	assert.Error(t, yaml.Unmarshal([]byte("severity: fatal\n"), &rule))
}

func TestLineIndex(t *testing.T) {
	t.Parallel()

	li := NewLineIndex([]rune("Line one.\nThis is é\n\nend"))
	assert.Equal(t, 4, li.Lines())

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{Offset: 0, Line: 1, Column: 1}},
		{9, Position{Offset: 9, Line: 1, Column: 10}},
		{10, Position{Offset: 10, Line: 2, Column: 1}},
		{18, Position{Offset: 18, Line: 2, Column: 9}},
		{20, Position{Offset: 20, Line: 3, Column: 1}},
		{21, Position{Offset: 21, Line: 4, Column: 1}},
		{-5, Position{Offset: 0, Line: 1, Column: 1}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, li.Position(tc.offset), "offset %d", tc.offset)
	}
	assert.Equal(t, "4:1", li.Position(21).String())
}

func TestIssueSuggestion(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Issue{}.Suggestion())
	assert.Equal(t, "large a", Issue{Suggestions: []string{"large a", "large  a"}}.Suggestion())
}
