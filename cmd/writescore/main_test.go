package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mind-engage/writescore/internal/evaluation"
	"github.com/mind-engage/writescore/internal/quiz"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HISTORY_DRIVER", "memory")
	t.Setenv("LT_DISABLED", "true")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreFromStdin(t *testing.T) {
	out, err := run(t, "My new hobby is painting. I started last year and I enjoy it.", "score", "--topic", "new-hobby", "--json")
	if err != nil {
		t.Fatalf("score: %v\n%s", err, out)
	}
	var rep evaluation.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if rep.TopicID != "new-hobby" || !rep.Degraded || rep.Scores.Content.Points != 3 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestScoreFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	if err := os.WriteFile(path, []byte("I visited a museum on our school trip."), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "score", "--topic", "school-trip", path)
	if err != nil {
		t.Fatalf("score: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Score: ") || !strings.Contains(out, "Content") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestScoreRejectsEmpty(t *testing.T) {
	if _, err := run(t, "   ", "score", "--topic", "new-hobby"); err == nil {
		t.Fatal("expected error for empty text")
	}
	if _, err := run(t, "text", "score"); err == nil {
		t.Fatal("expected error without --topic")
	}
	if _, err := run(t, "text", "score", "--topic", "missing"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestTopicsAndQuiz(t *testing.T) {
	out, err := run(t, "", "topics")
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if !strings.Contains(out, "event-invitation-email") || !strings.Contains(out, "email") {
		t.Fatalf("unexpected topics output:\n%s", out)
	}

	out, err = run(t, "", "quiz", "--json", "--n", "2")
	if err != nil {
		t.Fatalf("quiz: %v", err)
	}
	var qs []quiz.Question
	if err := json.Unmarshal([]byte(out), &qs); err != nil || len(qs) != 2 {
		t.Fatalf("unexpected quiz (%v):\n%s", err, out)
	}

	out, err = run(t, "", "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No history yet.") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
}
