package grading

import (
	"fmt"

	"github.com/mind-engage/writescore/internal/textstat"
)

// Criterion keys, in report order.
const (
	KeyContent     = "content"
	KeyCoherence   = "coherence"
	KeyRange       = "range"
	KeyCorrectness = "correctness"
	KeyLength      = "length"
)

// Word-count window for full length points.
const (
	MinWords = 50
	MaxWords = 120
)

// SubScore is the outcome of one heuristic.
type SubScore struct {
	Points   int    `json:"points"`
	Max      int    `json:"max"`
	Feedback string `json:"feedback"`
}

// ContentScore also carries which topic keywords were found.
type ContentScore struct {
	SubScore
	Hits    []string `json:"hits"`
	Missing []string `json:"missing,omitempty"`
}

// CoherenceMarkers are the linking words that earn full coherence points.
var CoherenceMarkers = []string{"however", "therefore", "first", "then", "in conclusion", "finally", "moreover"}

// Content counts how many keywords occur in text (case-insensitive substring)
// and maps the count onto 0..4.
func Content(text string, keywords []string) ContentScore {
	res := ContentScore{SubScore: SubScore{Max: 4}}
	for _, k := range keywords {
		if textstat.ContainsFold(text, k) {
			res.Hits = append(res.Hits, k)
		} else {
			res.Missing = append(res.Missing, k)
		}
	}
	switch n := len(res.Hits); {
	case n >= 5:
		res.Points, res.Feedback = 4, "Content matches the topic."
	case n >= 3:
		res.Points, res.Feedback = 3, "Good match, add more details."
	case n == 2:
		res.Points, res.Feedback = 2, "Partial match with the topic."
	case n == 1:
		res.Points, res.Feedback = 1, "Only one aspect of the topic is covered."
	default:
		res.Points, res.Feedback = 0, "Content does not match the topic."
	}
	return res
}

func Coherence(text string) SubScore {
	for _, m := range CoherenceMarkers {
		if textstat.ContainsFold(text, m) {
			return SubScore{Points: 2, Max: 2, Feedback: "Linking words are used."}
		}
	}
	return SubScore{Points: 1, Max: 2, Feedback: "Add more linking words (e.g. however, therefore, moreover)."}
}

// Range scores vocabulary by the number of distinct words.
func Range(text string) SubScore {
	n := textstat.UniqueWords(text)
	switch {
	case n > 40:
		return SubScore{Points: 2, Max: 2, Feedback: "Rich vocabulary."}
	case n > 20:
		return SubScore{Points: 1, Max: 2, Feedback: "Average vocabulary."}
	default:
		return SubScore{Points: 0, Max: 2, Feedback: "Very limited vocabulary."}
	}
}

// Length gives 2 inside [MinWords, MaxWords], 1 when too short and 0 when
// too long.
func Length(text string) SubScore {
	n := textstat.WordCount(text)
	if n >= MinWords && n <= MaxWords {
		return SubScore{Points: 2, Max: 2, Feedback: fmt.Sprintf("Word count: %d - within range.", n)}
	}
	pts := 0
	if n < MinWords {
		pts = 1
	}
	return SubScore{Points: pts, Max: 2, Feedback: fmt.Sprintf("Word count: %d - out of range (required %d-%d).", n, MinWords, MaxWords)}
}

// Correctness maps the number of detected errors onto 0..2.
func Correctness(errors int) SubScore {
	switch {
	case errors <= 0:
		return SubScore{Points: 2, Max: 2, Feedback: "No errors found."}
	case errors < 5:
		return SubScore{Points: 1, Max: 2, Feedback: fmt.Sprintf("%d error(s) found. The fewer errors, the better!", errors)}
	default:
		return SubScore{Points: 0, Max: 2, Feedback: fmt.Sprintf("%d errors found. The fewer errors, the better!", errors)}
	}
}
