package checker

import (
	"html"
	"sort"
	"strings"
)

// Highlight renders text as HTML with every record wrapped in a <mark>
// element. Each record is placed at its own span, so repeated fragments are
// marked where the checker found them and nowhere else. When spans overlap
// the one starting first wins.
func Highlight(text string, records []Record) string {
	spans := make([]Record, len(records))
	copy(spans, records)
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var b strings.Builder
	pos := 0
	for _, r := range spans {
		if r.start < pos || r.end > len(text) || r.start >= r.end {
			continue
		}
		b.WriteString(html.EscapeString(text[pos:r.start]))
		b.WriteString(`<mark data-category="`)
		b.WriteString(html.EscapeString(r.Category))
		b.WriteString(`" title="`)
		b.WriteString(html.EscapeString(r.Suggestion))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(text[r.start:r.end]))
		b.WriteString("</mark>")
		pos = r.end
	}
	b.WriteString(html.EscapeString(text[pos:]))
	return b.String()
}
