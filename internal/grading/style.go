package grading

import (
	"fmt"
	"math"
	"strings"

	"github.com/mind-engage/writescore/internal/textstat"
)

// Sentence complexity levels.
const (
	LevelNone    = "none"
	LevelSimple  = "simple"
	LevelMedium  = "medium"
	LevelComplex = "complex"
)

// Overused maps weak words to stronger alternatives. Order is kept stable for
// output.
var Overused = []struct {
	Word     string
	Synonyms []string
}{
	{"nice", []string{"pleasant", "enjoyable", "lovely"}},
	{"good", []string{"great", "excellent", "strong"}},
	{"very", []string{"really", "extremely", "highly"}},
	{"a lot", []string{"many", "plenty of", "a great deal"}},
	{"big", []string{"large", "huge", "significant"}},
}

// Connectors are the linking words the style hint looks for.
var Connectors = []string{"first", "then", "because", "however", "therefore", "in conclusion", "finally", "moreover", "for example"}

type Style struct {
	Sentences      int      `json:"sentences"`
	AvgSentenceLen float64  `json:"avg_sentence_len"`
	Level          string   `json:"level"`
	Suggestions    []string `json:"suggestions,omitempty"`
}

func AnalyzeStyle(text string) Style {
	sentences := textstat.Sentences(text)
	avg := 0.0
	if len(sentences) > 0 {
		words := 0
		for _, s := range sentences {
			words += textstat.WordCount(s)
		}
		avg = float64(words) / float64(len(sentences))
	}

	st := Style{
		Sentences:      len(sentences),
		AvgSentenceLen: math.Round(avg*10) / 10,
	}
	switch {
	case avg == 0:
		st.Level = LevelNone
	case avg < 12:
		st.Level = LevelSimple
	case avg <= 20:
		st.Level = LevelMedium
	default:
		st.Level = LevelComplex
	}

	for _, o := range Overused {
		if textstat.ContainsFold(text, o.Word) {
			st.Suggestions = append(st.Suggestions,
				fmt.Sprintf("Instead of %q try: %s.", o.Word, strings.Join(o.Synonyms, ", ")))
		}
	}
	hasConnector := false
	for _, c := range Connectors {
		if textstat.ContainsFold(text, c) {
			hasConnector = true
			break
		}
	}
	if !hasConnector {
		st.Suggestions = append(st.Suggestions, "Add linking words: however, therefore, moreover, for example.")
	}
	return st
}
