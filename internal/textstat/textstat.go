// Package textstat holds the small amount of tokenisation the scorers share.
package textstat

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Fold normalises s (NFKC) and applies Unicode case folding, so that
// comparisons are case-insensitive for non-ASCII text as well.
func Fold(s string) string {
	return folder.String(norm.NFKC.String(s))
}

// ContainsFold reports whether phrase occurs in text, ignoring case.
// An empty phrase never matches.
func ContainsFold(text, phrase string) bool {
	if strings.TrimSpace(phrase) == "" {
		return false
	}
	return strings.Contains(Fold(text), Fold(phrase))
}

// Words splits text on whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount is len(Words(text)).
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// UniqueWords counts distinct lower-cased whitespace tokens.
func UniqueWords(text string) int {
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// Sentences splits text after '.', '!' or '?' when followed by whitespace.
// Pieces are trimmed and empty ones dropped.
func Sentences(text string) []string {
	var out []string
	rs := []rune(text)
	start := 0
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '.', '!', '?':
			if i+1 < len(rs) && unicode.IsSpace(rs[i+1]) {
				if s := strings.TrimSpace(string(rs[start : i+1])); s != "" {
					out = append(out, s)
				}
				start = i + 1
			}
		}
	}
	if start < len(rs) {
		if s := strings.TrimSpace(string(rs[start:])); s != "" {
			out = append(out, s)
		}
	}
	return out
}
