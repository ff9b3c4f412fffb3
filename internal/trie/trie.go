// Package trie indexes paths by their segments so that "is this path
// below one of these directories" is a single walk from the root.
package trie

import (
	"path/filepath"
	"sort"
	"strings"
)

// Nodes live in one slice and refer to each other by index, which keeps
// the whole trie in a single allocation that grows by appending.

// NodeIndex represents the index of a trie node.
type NodeIndex int

// Arena is a memory pool that stores all trie nodes.
type Arena struct {
	nodes []arenaNode
}

type arenaNode struct {
	// children maps a path segment to the index of the child node
	children map[string]NodeIndex
	// isEnd marks the last segment of an inserted path
	isEnd bool
}

// NewArena creates an arena holding only the root node.
func NewArena() *Arena {
	arena := &Arena{
		nodes: make([]arenaNode, 0, 64),
	}
	arena.nodes = append(arena.nodes, arenaNode{children: make(map[string]NodeIndex)})
	return arena
}

func (a *Arena) newNode() NodeIndex {
	idx := NodeIndex(len(a.nodes))
	a.nodes = append(a.nodes, arenaNode{children: make(map[string]NodeIndex)})
	return idx
}

// Insert adds a sequence of segments.
func (a *Arena) Insert(sequence []string) {
	current := NodeIndex(0)

	for _, part := range sequence {
		node := &a.nodes[current]
		childIdx, exists := node.children[part]
		if !exists {
			childIdx = a.newNode()
			// newNode may have moved the slice; index again
			a.nodes[current].children[part] = childIdx
		}
		current = childIdx
	}

	a.nodes[current].isEnd = true
}

// HasPrefixOf reports whether some inserted sequence is a prefix of
// sequence (or equal to it).
func (a *Arena) HasPrefixOf(sequence []string) bool {
	current := NodeIndex(0)
	if a.nodes[current].isEnd {
		return true
	}

	for _, part := range sequence {
		childIdx, exists := a.nodes[current].children[part]
		if !exists {
			return false
		}
		current = childIdx
		if a.nodes[current].isEnd {
			return true
		}
	}
	return false
}

// DebugString renders the trie with children in sorted order.
func (a *Arena) DebugString() string {
	return a.debugStringNode(NodeIndex(0))
}

func (a *Arena) debugStringNode(idx NodeIndex) string {
	node := a.nodes[idx]
	var sb strings.Builder

	if node.isEnd {
		sb.WriteString("*")
	}

	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString("(")
		sb.WriteString(a.debugStringNode(node.children[key]))
		sb.WriteString(")")
	}

	return sb.String()
}

// PathTrie indexes file system paths.
type PathTrie struct {
	arena *Arena
	size  int
}

// New returns an empty PathTrie.
func New() *PathTrie {
	return &PathTrie{arena: NewArena()}
}

// Insert adds path, which is cleaned first.
func (t *PathTrie) Insert(path string) {
	t.arena.Insert(Segments(path))
	t.size++
}

// Contains reports whether path is an inserted path or lies below one.
func (t *PathTrie) Contains(path string) bool {
	if t.size == 0 {
		return false
	}
	return t.arena.HasPrefixOf(Segments(path))
}

// Len returns the number of inserted paths.
func (t *PathTrie) Len() int {
	return t.size
}

func (t *PathTrie) DebugString() string {
	return t.arena.DebugString()
}

// Segments splits a cleaned path into its elements. A leading separator
// is kept as its own segment so absolute and relative paths never mix.
func Segments(path string) []string {
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == "." {
		return nil
	}

	var segments []string
	if strings.HasPrefix(clean, "/") {
		segments = append(segments, "/")
		clean = strings.TrimPrefix(clean, "/")
	}
	if clean == "" {
		return segments
	}
	return append(segments, strings.Split(clean, "/")...)
}
