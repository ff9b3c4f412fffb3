// Package token defines the classified spans produced by the tokenizer and
// the capability set attached to each of them.
package token
