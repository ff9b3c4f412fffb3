package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for path, content := range files {
		fullPath := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
}

func TestProjectScanner(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeTree(t, tempDir, map[string]string{
		"README.md":                 "# Title",
		"notes.txt":                 "This is a text file",
		"main.go":                   "package main",
		"docs/guide.MD":             "A guide",
		"docs/deep/faq.markdown":    "Questions",
		".git/description.txt":      "hidden",
		"node_modules/pkg/index.md": "vendored",
	})

	scannedFiles, err := New(tempDir, DefaultExtensions...).Scan()
	require.NoError(t, err)

	var paths []string
	for _, file := range scannedFiles {
		paths = append(paths, file.Path)
		assert.Greater(t, file.Size, int64(0), "File size should be greater than 0")
	}

	assert.Equal(t, []string{
		filepath.Join(tempDir, "README.md"),
		filepath.Join(tempDir, "docs/deep/faq.markdown"),
		filepath.Join(tempDir, "docs/guide.MD"),
		filepath.Join(tempDir, "notes.txt"),
	}, paths)
}

func TestScannerNoExtensions(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeTree(t, tempDir, map[string]string{
		"a.md":   "a",
		"b.go":   "b",
		"c.yaml": "c",
	})

	files, err := New(tempDir).Scan()
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestScannerMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := New(filepath.Join(t.TempDir(), "missing"), ".md").Scan()
	assert.Error(t, err)
}
