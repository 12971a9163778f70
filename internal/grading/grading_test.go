package grading

import (
	"fmt"
	"strings"
	"testing"
)

// words builds a text of n distinct tokens.
func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestLengthThresholds(t *testing.T) {
	for n := 0; n <= 200; n++ {
		got := Length(words(n)).Points
		var want int
		switch {
		case n >= MinWords && n <= MaxWords:
			want = 2
		case n < MinWords:
			want = 1
		default:
			want = 0
		}
		if got != want {
			t.Fatalf("n=%d: got %d want %d", n, got, want)
		}
	}
}

func TestContentMonotonic(t *testing.T) {
	keywords := []string{"holiday", "trip", "beach", "mountains", "memories", "visited", "hotel"}
	want := []int{0, 1, 2, 3, 3, 4, 4, 4}
	prev := -1
	for k := 0; k <= len(keywords); k++ {
		text := "We " + strings.Join(keywords[:k], " and ")
		got := Content(text, keywords)
		if got.Points != want[k] {
			t.Fatalf("hits=%d: got %d want %d", k, got.Points, want[k])
		}
		if got.Points < prev {
			t.Fatalf("content score decreased at hits=%d", k)
		}
		if len(got.Hits) != k || len(got.Missing) != len(keywords)-k {
			t.Fatalf("hits=%d: hits %v missing %v", k, got.Hits, got.Missing)
		}
		prev = got.Points
	}
}

func TestContentCaseInsensitiveSubstring(t *testing.T) {
	got := Content("I want to invite you to POLAND.", []string{"Poland", "invite", "school play"})
	if got.Points != 2 {
		t.Fatalf("expected 2, got %d (%v)", got.Points, got.Hits)
	}
	if len(got.Missing) != 1 || got.Missing[0] != "school play" {
		t.Fatalf("unexpected missing %v", got.Missing)
	}
}

func TestCoherence(t *testing.T) {
	if got := Coherence("First we went out. It rained."); got.Points != 2 {
		t.Fatalf("expected 2, got %d", got.Points)
	}
	if got := Coherence("We went out. It rained."); got.Points != 1 {
		t.Fatalf("expected 1, got %d", got.Points)
	}
}

func TestRange(t *testing.T) {
	cases := map[int]int{0: 0, 20: 0, 21: 1, 40: 1, 41: 2}
	for n, want := range cases {
		if got := Range(words(n)).Points; got != want {
			t.Errorf("unique=%d: got %d want %d", n, got, want)
		}
	}
	// repeated words do not count twice
	if got := Range(strings.Repeat("Same same ", 50)).Points; got != 0 {
		t.Fatalf("expected 0 for repeated text, got %d", got)
	}
}

func TestCorrectness(t *testing.T) {
	cases := map[int]int{0: 2, 1: 1, 4: 1, 5: 0, 12: 0}
	for n, want := range cases {
		if got := Correctness(n).Points; got != want {
			t.Errorf("errors=%d: got %d want %d", n, got, want)
		}
	}
}

func TestScoreRubricClamps(t *testing.T) {
	total, notes := ScoreRubric(DefaultRubric, map[string]int{
		KeyContent: 9, KeyCoherence: 2, KeyRange: 2, KeyCorrectness: -3, KeyLength: 2,
	})
	if total != 10 {
		t.Fatalf("expected total capped to 10, got %d", total)
	}
	if len(notes) != 5 || notes[0] != "content:4/4" || notes[3] != "correctness:0/2" {
		t.Fatalf("unexpected notes %v", notes)
	}
}

func TestScoreTotalWithinBounds(t *testing.T) {
	keywords := []string{"holiday", "trip", "beach", "mountains", "memories"}
	texts := []string{
		"",
		"holiday",
		"First, holiday trip beach mountains memories. " + words(60),
		strings.Repeat("x ", 300),
	}
	for _, txt := range texts {
		for errs := 0; errs < 8; errs++ {
			s := Score(txt, keywords, errs)
			if s.Total < 0 || s.Total > 10 {
				t.Fatalf("total %d out of bounds", s.Total)
			}
			sum := s.Content.Points + s.Coherence.Points + s.Range.Points + s.Correctness.Points + s.Length.Points
			want := sum
			if want > 10 {
				want = 10
			}
			if s.Total != want {
				t.Fatalf("total %d, want min(%d,10)", s.Total, sum)
			}
		}
	}
}

func TestScorePerfect(t *testing.T) {
	text := "First, holiday trip beach mountains memories. " + words(60)
	s := Score(text, []string{"holiday", "trip", "beach", "mountains", "memories"}, 0)
	if s.Total != 10 || s.Max != 10 {
		t.Fatalf("expected 10/10, got %d/%d (%v)", s.Total, s.Max, s.Awarded())
	}
	if len(s.Notes) != 5 || s.Notes[0] != "content:4/4" || s.Notes[4] != "length:2/2" {
		t.Fatalf("unexpected notes %v", s.Notes)
	}
	if got := Badges(s); len(got) != 5 {
		t.Fatalf("expected all five badges, got %v", got)
	}
}

func TestBadgesPartial(t *testing.T) {
	s := Score("short text", nil, 7)
	got := Badges(s)
	if len(got) != 0 {
		t.Fatalf("expected no badges, got %v", got)
	}
}

func TestAnalyzeStyle(t *testing.T) {
	st := AnalyzeStyle("")
	if st.Level != LevelNone || st.Sentences != 0 {
		t.Fatalf("unexpected empty style %+v", st)
	}

	st = AnalyzeStyle("It was a very nice day. We had a lot of fun.")
	if st.Sentences != 2 || st.AvgSentenceLen != 6 || st.Level != LevelSimple {
		t.Fatalf("unexpected style %+v", st)
	}
	// nice, very, a lot + missing connectors
	if len(st.Suggestions) != 4 {
		t.Fatalf("expected 4 suggestions, got %v", st.Suggestions)
	}

	long := strings.Repeat("word ", 25) + "end. However it works."
	st = AnalyzeStyle(long)
	if st.Level != LevelMedium {
		t.Fatalf("expected medium, got %+v", st)
	}
	if len(st.Suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", st.Suggestions)
	}
}

func TestEmailChecklist(t *testing.T) {
	text := "Hello Anna. I want to invite you to my party on Saturday. Please tell me if you can come."
	got := EmailChecklist(text, []string{"invite", "Party", "date"})
	if len(got) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(got))
	}
	if got[0].OK || got[0].Detail != "Not covered: date." {
		t.Fatalf("unexpected content check %+v", got[0])
	}
	if !got[1].OK || !got[2].OK {
		t.Fatalf("unexpected checks %+v", got)
	}

	got = EmailChecklist("Hi hi hi hi.", nil)
	if !got[0].OK || got[1].OK || got[2].OK {
		t.Fatalf("unexpected short email checks %+v", got)
	}
}
