// Package quiz is the short review quiz shown after an evaluation.
package quiz

import (
	"fmt"
	"math/rand/v2"
)

type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// Bank is the built-in question set.
var Bank = []Question{
	{
		ID:          "connector-contrast",
		Question:    "Which connector best joins the sentences: 'I wanted to go for a walk. It started raining.'",
		Options:     []string{"because", "however", "for example"},
		Answer:      "however",
		Explanation: "Contrast: I wanted to go for a walk, however it started raining.",
	},
	{
		ID:          "precise-word",
		Question:    "Choose a more precise word instead of 'good':",
		Options:     []string{"excellent", "nice", "okay"},
		Answer:      "excellent",
		Explanation: "'Excellent' is more precise and stronger than 'good'.",
	},
	{
		ID:          "past-simple",
		Question:    "Choose the correct Past Simple sentence:",
		Options:     []string{"Yesterday I go to school.", "Yesterday I went to school.", "Yesterday I going to school."},
		Answer:      "Yesterday I went to school.",
		Explanation: "Past Simple: went.",
	},
}

// Draw shuffles the bank and returns up to n questions with answers removed.
func Draw(rng *rand.Rand, n int) []Question {
	if n <= 0 || n > len(Bank) {
		n = len(Bank)
	}
	idx := rng.Perm(len(Bank))[:n]
	out := make([]Question, 0, n)
	for _, i := range idx {
		q := Bank[i]
		q.Options = append([]string(nil), q.Options...)
		q.Answer, q.Explanation = "", ""
		out = append(out, q)
	}
	return out
}

type Verdict struct {
	ID          string `json:"id"`
	Given       string `json:"given"`
	Correct     bool   `json:"correct"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
}

type Result struct {
	Verdicts []Verdict `json:"verdicts"`
	Correct  int       `json:"correct"`
	Total    int       `json:"total"`
	Summary  string    `json:"summary"`
}

// Check grades answers keyed by question ID. Unknown IDs are ignored; the
// result follows bank order.
func Check(answers map[string]string) Result {
	var res Result
	for _, q := range Bank {
		given, ok := answers[q.ID]
		if !ok {
			continue
		}
		v := Verdict{ID: q.ID, Given: given, Answer: q.Answer, Correct: given == q.Answer}
		if v.Correct {
			res.Correct++
		} else {
			v.Explanation = q.Explanation
		}
		res.Verdicts = append(res.Verdicts, v)
	}
	res.Total = len(res.Verdicts)
	res.Summary = fmt.Sprintf("Quiz score: %d/%d", res.Correct, res.Total)
	return res
}
