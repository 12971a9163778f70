package grading

// Badge is an achievement earned by a single submission.
type Badge struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

const (
	BadgeNoErrors    = "no_errors"
	BadgeVocabulary  = "vocabulary_master"
	BadgeLogicalFlow = "logical_flow"
	BadgeOnTopic     = "on_topic"
	BadgeIdealLength = "ideal_length"
)

// Badges awards one badge per criterion at full marks.
func Badges(s Scores) []Badge {
	var out []Badge
	if s.Correctness.Points == 2 {
		out = append(out, Badge{Type: BadgeNoErrors, Reason: "No errors!"})
	}
	if s.Range.Points == 2 {
		out = append(out, Badge{Type: BadgeVocabulary, Reason: "Vocabulary master"})
	}
	if s.Coherence.Points == 2 {
		out = append(out, Badge{Type: BadgeLogicalFlow, Reason: "Logical flow"})
	}
	if s.Content.Points == 4 {
		out = append(out, Badge{Type: BadgeOnTopic, Reason: "Content on topic"})
	}
	if s.Length.Points == 2 {
		out = append(out, Badge{Type: BadgeIdealLength, Reason: "Ideal length"})
	}
	return out
}
