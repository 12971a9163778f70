package grading

import "fmt"

type Rubric struct {
	Criteria []Criterion `json:"criteria"`
	Max      int         `json:"max_points"`
}

type Criterion struct {
	Key       string `json:"key"`
	Desc      string `json:"desc"`
	MaxPoints int    `json:"max_points"`
}

// DefaultRubric is the 0-10 writing rubric. The criteria add up to 12, so
// the cap is reachable from several combinations.
var DefaultRubric = Rubric{
	Criteria: []Criterion{
		{Key: KeyContent, Desc: "Content", MaxPoints: 4},
		{Key: KeyCoherence, Desc: "Coherence", MaxPoints: 2},
		{Key: KeyRange, Desc: "Range", MaxPoints: 2},
		{Key: KeyCorrectness, Desc: "Correctness", MaxPoints: 2},
		{Key: KeyLength, Desc: "Length", MaxPoints: 2},
	},
	Max: 10,
}

// ScoreRubric clamps each awarded value to its criterion and the sum to r.Max.
func ScoreRubric(r Rubric, awarded map[string]int) (int, []string) {
	total := 0
	notes := make([]string, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		v := awarded[c.Key]
		if v < 0 {
			v = 0
		}
		if v > c.MaxPoints {
			v = c.MaxPoints
		}
		total += v
		notes = append(notes, fmt.Sprintf("%s:%d/%d", c.Key, v, c.MaxPoints))
	}
	if r.Max > 0 && total > r.Max {
		total = r.Max
	}
	return total, notes
}

// Scores is the full set of sub-scores for one submission.
type Scores struct {
	Content     ContentScore `json:"content"`
	Coherence   SubScore     `json:"coherence"`
	Range       SubScore     `json:"range"`
	Correctness SubScore     `json:"correctness"`
	Length      SubScore     `json:"length"`
	Total       int          `json:"total"`
	Max         int          `json:"max"`
	Notes       []string     `json:"-"` // "key:v/max" per criterion
}

// Score runs every heuristic and sums them through DefaultRubric.
func Score(text string, keywords []string, errorCount int) Scores {
	s := Scores{
		Content:     Content(text, keywords),
		Coherence:   Coherence(text),
		Range:       Range(text),
		Correctness: Correctness(errorCount),
		Length:      Length(text),
		Max:         DefaultRubric.Max,
	}
	s.Total, s.Notes = ScoreRubric(DefaultRubric, s.Awarded())
	return s
}

// Awarded returns the points keyed by criterion.
func (s Scores) Awarded() map[string]int {
	return map[string]int{
		KeyContent:     s.Content.Points,
		KeyCoherence:   s.Coherence.Points,
		KeyRange:       s.Range.Points,
		KeyCorrectness: s.Correctness.Points,
		KeyLength:      s.Length.Points,
	}
}
