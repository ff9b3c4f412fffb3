package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RustWorks/harper-grammar-checker/internal/patterns"
	"github.com/RustWorks/harper-grammar-checker/internal/types"
)

type mockLintEngine struct {
	mock.Mock
}

func (m *mockLintEngine) Run(filePath string) ([]types.Issue, error) {
	args := m.Called(filePath)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockLintEngine) RunSource(filename string, source []byte) ([]types.Issue, error) {
	args := m.Called(filename, source)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockLintEngine) IgnoreRule(rule string) {
	m.Called(rule)
}

func (m *mockLintEngine) IgnorePath(path string) {
	m.Called(path)
}

func testIssue(rule, filename string) types.Issue {
	return types.Issue{
		Rule:     rule,
		Filename: filename,
		Start:    types.Position{Offset: 0, Line: 1, Column: 1},
		End:      types.Position{Offset: 10, Line: 1, Column: 11},
		Message:  "Test issue",
	}
}

func createTempFiles(t *testing.T, dir string, fileNames ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(fileNames))
	for _, fileName := range fileNames {
		filePath := filepath.Join(dir, fileName)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte("text"), 0o644))
		paths = append(paths, filePath)
	}
	return paths
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expectedIssues := []types.Issue{testIssue("test-rule", "test.md")}

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", "test.md").Return(expectedIssues, nil)

	issues, err := ProcessFile(mockEngine, "test.md")

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessSource(t *testing.T) {
	t.Parallel()
	expectedIssues := []types.Issue{testIssue("test-rule", StdinName)}
	content := []byte("too big of a deal")

	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", StdinName, content).Return(expectedIssues, nil)

	issues, err := ProcessSource(mockEngine, content)

	assert.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPath(t *testing.T) {
	t.Parallel()
	logger := zap.NewNop()
	ctx := context.Background()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "a.md", "b.txt", "code.go", "docs/c.md")

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{testIssue("rule1", paths[0])}, nil)
	mockEngine.On("Run", paths[1]).Return([]types.Issue{testIssue("rule2", paths[1])}, nil)
	mockEngine.On("Run", paths[3]).Return([]types.Issue{testIssue("rule3", paths[3])}, nil)

	issues, err := ProcessPath(ctx, logger, mockEngine, tempDir, ProcessFile)

	require.NoError(t, err)
	require.Len(t, issues, 3)
	// results follow the scanner's path order
	assert.Equal(t, "rule1", issues[0].Rule)
	assert.Equal(t, "rule2", issues[1].Rule)
	assert.Equal(t, "rule3", issues[2].Rule)
	mockEngine.AssertExpectations(t)
	mockEngine.AssertNotCalled(t, "Run", paths[2])
}

func TestProcessPathSkipsFailingFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "bad.md", "good.md")

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue(nil), errors.New("boom"))
	mockEngine.On("Run", paths[1]).Return([]types.Issue{testIssue("rule", paths[1])}, nil)

	issues, err := ProcessPath(context.Background(), nil, mockEngine, tempDir, ProcessFile)

	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, paths[1], issues[0].Filename)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "a.md", "main.go")

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{testIssue("rule", paths[0])}, nil)

	issues, err := ProcessPath(context.Background(), nil, mockEngine, paths[0], ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 1)

	issues, err = ProcessPath(context.Background(), nil, mockEngine, paths[1], ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)

	_, err = ProcessPath(context.Background(), nil, mockEngine, filepath.Join(tempDir, "missing.md"), ProcessFile)
	assert.Error(t, err)

	mockEngine.AssertExpectations(t)
}

func TestProcessPathContextCancellation(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	createTempFiles(t, tempDir, "a.md", "b.md", "c.md")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockEngine := new(mockLintEngine)
	issues, err := ProcessPath(ctx, nil, mockEngine, tempDir, ProcessFile)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotNil(t, issues)
	mockEngine.AssertNotCalled(t, "Run", mock.Anything)
}

func TestProcessFiles(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	paths := createTempFiles(t, tempDir, "test1.md", "test2.md")

	mockEngine := new(mockLintEngine)
	mockEngine.On("Run", paths[0]).Return([]types.Issue{testIssue("rule1", paths[0])}, nil)
	mockEngine.On("Run", paths[1]).Return([]types.Issue{testIssue("rule2", paths[1])}, nil)

	issues, err := ProcessFiles(context.Background(), zap.NewNop(), mockEngine, paths, ProcessFile)

	assert.NoError(t, err)
	assert.Len(t, issues, 2)
	mockEngine.AssertExpectations(t)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()

	mockEngine := new(mockLintEngine)
	mockEngine.On("RunSource", StdinName, []byte("one")).Return([]types.Issue{testIssue("rule1", StdinName)}, nil)
	mockEngine.On("RunSource", StdinName, []byte("two")).Return([]types.Issue{testIssue("rule2", StdinName)}, nil)

	issues, err := ProcessSources(context.Background(), zap.NewNop(), mockEngine, [][]byte{[]byte("one"), []byte("two")}, ProcessSource)

	assert.NoError(t, err)
	assert.Len(t, issues, 2)
	mockEngine.AssertExpectations(t)
}

func TestHasDesiredExtension(t *testing.T) {
	t.Parallel()
	assert.True(t, hasDesiredExtension("README.md"))
	assert.True(t, hasDesiredExtension("notes.TXT"))
	assert.True(t, hasDesiredExtension("guide.markdown"))
	assert.False(t, hasDesiredExtension("main.go"))
	assert.False(t, hasDesiredExtension("README"))
}

const yamlConfig = `name: docs
rules:
  adjective-of-a:
    severity: error
phrases:
  - name: very-unique
    message: Something is either unique or it is not.
    kind: WordChoice
    replacement: unique
    pattern:
      - kind: word_set
        words: [very]
      - kind: whitespace
      - kind: word_set
        words: [unique]
ignore:
  - CHANGELOG.md
`

const tomlConfig = `name = "docs"
ignore = ["CHANGELOG.md"]

[rules.adjective-of-a]
severity = "error"

[[phrases]]
name = "very-unique"
message = "Something is either unique or it is not."
kind = "WordChoice"
replacement = "unique"

  [[phrases.pattern]]
  kind = "word_set"
  words = ["very"]

  [[phrases.pattern]]
  kind = "whitespace"

  [[phrases.pattern]]
  kind = "word_set"
  words = ["unique"]
`

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "harper.yaml", yamlConfig},
		{"toml", "harper.toml", tomlConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			config, err := LoadConfig(path)
			require.NoError(t, err)

			assert.Equal(t, "docs", config.Name)
			assert.Equal(t, types.SeverityError, config.Rules["adjective-of-a"].Severity)
			assert.Equal(t, []string{"CHANGELOG.md"}, config.Ignore)

			require.Len(t, config.Phrases, 1)
			phrase := config.Phrases[0]
			assert.Equal(t, "very-unique", phrase.Name)
			require.NotNil(t, phrase.Kind)
			assert.Equal(t, types.LintKindWordChoice, *phrase.Kind)
			require.NotNil(t, phrase.Replacement)
			assert.Equal(t, "unique", *phrase.Replacement)
			require.Len(t, phrase.Pattern, 3)
			assert.Equal(t, patterns.SpecWordSet, phrase.Pattern[0].Kind)
			assert.Equal(t, []string{"very"}, phrase.Pattern[0].Words)
			assert.Equal(t, patterns.SpecWhitespace, phrase.Pattern[1].Kind)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  adjective-of-a:\n    severity: loud\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "harper.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(yamlConfig), 0o644))

	engine, err := New(configPath)
	require.NoError(t, err)

	issues, err := engine.RunSource("doc.md", []byte("A very unique idea, and too big of a risk."))
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "very-unique", issues[0].Rule)
	assert.Equal(t, "adjective-of-a", issues[1].Rule)
	assert.Equal(t, types.SeverityError, issues[1].Severity)

	changelog := filepath.Join(dir, "CHANGELOG.md")
	require.NoError(t, os.WriteFile(changelog, []byte("too big of a deal"), 0o644))
	issues, err = engine.Run(changelog)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	engine, err := New("")
	require.NoError(t, err)

	issues, err := engine.RunSource("doc.md", []byte("This is too large of a test"))
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}
