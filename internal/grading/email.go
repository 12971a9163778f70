package grading

import (
	"strings"

	"github.com/mind-engage/writescore/internal/textstat"
)

// EmailCheck is one item of the email task checklist.
type EmailCheck struct {
	Key    string `json:"key"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// MinEmailSentences is the shortest email considered coherent.
const MinEmailSentences = 3

// EmailChecklist reviews an email against the task requirements: every
// required point mentioned, at least three sentences, and more than 60% of
// words distinct.
func EmailChecklist(text string, required []string) []EmailCheck {
	var missing []string
	for _, r := range required {
		if !textstat.ContainsFold(text, r) {
			missing = append(missing, r)
		}
	}
	points := EmailCheck{Key: KeyContent, OK: len(missing) == 0, Detail: "All required points are covered."}
	if !points.OK {
		points.Detail = "Not covered: " + strings.Join(missing, ", ") + "."
	}

	flow := EmailCheck{Key: KeyCoherence, OK: len(textstat.Sentences(text)) >= MinEmailSentences, Detail: "The email reads as a coherent message."}
	if !flow.OK {
		flow.Detail = "The email is too short."
	}

	words := textstat.WordCount(text)
	variety := EmailCheck{Key: KeyRange, OK: words > 0 && float64(textstat.UniqueWords(text)) > float64(words)*0.6, Detail: "Vocabulary is varied."}
	if !variety.OK {
		variety.Detail = "Vocabulary is too repetitive."
	}
	return []EmailCheck{points, flow, variety}
}
