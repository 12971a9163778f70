package checker

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Match is one issue reported by a checker. Offset and Length are in UTF-16
// code units, the way LanguageTool reports them.
type Match struct {
	Offset       int      `json:"offset"`
	Length       int      `json:"length"`
	Message      string   `json:"message,omitempty"`
	Replacements []string `json:"replacements,omitempty"`
	Category     string   `json:"category"`
	Source       string   `json:"source"`
}

// Checker finds issues in a text.
type Checker interface {
	Check(ctx context.Context, text string) ([]Match, error)
}

// Record is a match resolved against the submitted text.
type Record struct {
	Text       string `json:"text"`
	Suggestion string `json:"suggestion"`
	Category   string `json:"category"`
	Message    string `json:"message,omitempty"`

	start, end int // byte span in the checked text
}

// Span returns the byte span of the record within the checked text.
func (r Record) Span() (start, end int) { return r.start, r.end }

// Records slices every match out of text. Matches that fall outside the text
// or cover only whitespace are dropped; a match without replacements gets
// the suggestion "-".
func Records(text string, matches []Match) []Record {
	out := make([]Record, 0, len(matches))
	for _, m := range matches {
		start, end, ok := byteSpan(text, m.Offset, m.Length)
		if !ok {
			continue
		}
		frag := text[start:end]
		if strings.TrimSpace(frag) == "" {
			continue
		}
		sug := "-"
		if len(m.Replacements) > 0 && m.Replacements[0] != "" {
			sug = m.Replacements[0]
		}
		cat := m.Category
		if cat == "" {
			cat = "unknown"
		}
		out = append(out, Record{
			Text:       frag,
			Suggestion: sug,
			Category:   cat,
			Message:    m.Message,
			start:      start,
			end:        end,
		})
	}
	return out
}

// Tally counts records per category.
func Tally(records []Record) map[string]int {
	out := make(map[string]int, len(records))
	for _, r := range records {
		out[r.Category]++
	}
	return out
}

// byteSpan converts a UTF-16 offset/length into a byte range of text.
func byteSpan(text string, offset, length int) (int, int, bool) {
	if offset < 0 || length <= 0 {
		return 0, 0, false
	}
	units := 0
	start, end := -1, -1
	for i, r := range text {
		if units == offset {
			start = i
		}
		if units == offset+length {
			end = i
			break
		}
		units += utf16Len(r)
	}
	if start < 0 && units == offset {
		start = len(text)
	}
	if end < 0 && units == offset+length {
		end = len(text)
	}
	if start < 0 || end < 0 || start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func utf16Len(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
