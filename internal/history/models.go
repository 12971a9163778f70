package history

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("history entry not found")

// Entry is one scored submission in a learner's history.
type Entry struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	TopicID   string    `json:"topic_id"`
	Points    int       `json:"points"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

type ListOpts struct {
	Subject string // filter by learner; empty lists everyone
	TopicID string
	Limit   int
	Offset  int
}

type Store interface {
	Append(ctx context.Context, e Entry) error
	Get(ctx context.Context, id string) (Entry, error)
	// List returns entries oldest first.
	List(ctx context.Context, opts ListOpts) ([]Entry, error)
	// Recent returns the last n entries of subject, oldest first.
	Recent(ctx context.Context, subject string, n int) ([]Entry, error)
}

// ProgressWindow is how many attempts the progress series covers.
const ProgressWindow = 10

type Point struct {
	Attempt int `json:"attempt"`
	Points  int `json:"points"`
}

// Progress numbers the last ProgressWindow entries from 1.
func Progress(entries []Entry) []Point {
	if len(entries) > ProgressWindow {
		entries = entries[len(entries)-ProgressWindow:]
	}
	out := make([]Point, 0, len(entries))
	for i, e := range entries {
		out = append(out, Point{Attempt: i + 1, Points: e.Points})
	}
	return out
}
