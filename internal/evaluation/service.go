// Package evaluation runs one submission through checking, scoring and
// history.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mind-engage/writescore/internal/checker"
	"github.com/mind-engage/writescore/internal/grading"
	"github.com/mind-engage/writescore/internal/history"
	"github.com/mind-engage/writescore/internal/storage"
	syncx "github.com/mind-engage/writescore/internal/sync"
	"github.com/mind-engage/writescore/internal/textstat"
	"github.com/mind-engage/writescore/internal/topic"
)

var (
	ErrEmptySubmission = errors.New("submission text is empty")
	ErrTopicNotFound   = errors.New("topic not found")
)

var tracer = otel.Tracer("writescore/evaluation")

type Submission struct {
	TopicID string `json:"topic_id"`
	Text    string `json:"text"`
}

// Report is everything shown to the learner after one submission.
type Report struct {
	ID          string               `json:"id"`
	TopicID     string               `json:"topic_id"`
	TopicTitle  string               `json:"topic_title"`
	Format      string               `json:"format"`
	Words       int                  `json:"words"`
	Scores      grading.Scores       `json:"scores"`
	Notes       []string             `json:"notes"`
	Style       grading.Style        `json:"style"`
	Badges      []grading.Badge      `json:"badges"`
	Errors      []checker.Record     `json:"errors"`
	Categories  map[string]int       `json:"categories"`
	Highlighted string               `json:"highlighted_html"`
	Email       []grading.EmailCheck `json:"email_checklist,omitempty"`
	Degraded    bool                 `json:"degraded"`
	Notice      string               `json:"notice,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// EventRecorder receives an event per scored submission.
type EventRecorder interface {
	Record(ctx context.Context, typ, key string, payload any) error
}

type Service struct {
	Topics  topic.Store
	History history.Store
	Checker checker.Fallback
	Events  EventRecorder     // optional
	Archive storage.BlobStore // optional, keeps submitted texts

	Now   func() time.Time
	NewID func() string
}

func NewService(topics topic.Store, hist history.Store, fb checker.Fallback) *Service {
	return &Service{
		Topics:  topics,
		History: hist,
		Checker: fb,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

// Evaluate scores sub for subject and appends the result to its history.
// A failing grammar service never fails the call; the report is marked
// Degraded instead.
func (s *Service) Evaluate(ctx context.Context, subject string, sub Submission) (Report, error) {
	if strings.TrimSpace(sub.Text) == "" {
		return Report{}, ErrEmptySubmission
	}
	ctx, span := tracer.Start(ctx, "evaluation.evaluate")
	defer span.End()

	tp, err := s.Topics.Get(ctx, sub.TopicID)
	if errors.Is(err, topic.ErrNotFound) {
		return Report{}, fmt.Errorf("%w: %q", ErrTopicNotFound, sub.TopicID)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "topic lookup")
		return Report{}, fmt.Errorf("get topic: %w", err)
	}

	res := s.Checker.Run(ctx, sub.Text)
	records := checker.Records(sub.Text, res.Matches)
	scores := grading.Score(sub.Text, tp.Keywords, len(records))

	now := s.now()
	rep := Report{
		ID:          s.newID(),
		TopicID:     tp.ID,
		TopicTitle:  tp.Title,
		Format:      tp.Format,
		Words:       textstat.WordCount(sub.Text),
		Scores:      scores,
		Notes:       scores.Notes,
		Style:       grading.AnalyzeStyle(sub.Text),
		Badges:      grading.Badges(scores),
		Errors:      records,
		Categories:  checker.Tally(records),
		Highlighted: checker.Highlight(sub.Text, records),
		Degraded:    res.Degraded,
		Notice:      res.Notice,
		CreatedAt:   now,
	}
	if tp.Format == topic.FormatEmail {
		rep.Email = grading.EmailChecklist(sub.Text, tp.Keywords)
	}
	span.SetAttributes(
		attribute.String("topic.id", tp.ID),
		attribute.Int("score.total", scores.Total),
		attribute.Int("errors", len(records)),
		attribute.Bool("degraded", res.Degraded),
	)

	entry := history.Entry{
		ID:        rep.ID,
		Subject:   subject,
		TopicID:   tp.ID,
		Points:    scores.Total,
		Date:      now.Format("2006-01-02"),
		CreatedAt: now,
	}
	if err := s.History.Append(ctx, entry); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "history append")
		return Report{}, fmt.Errorf("append history: %w", err)
	}
	if s.Archive != nil {
		if err := s.Archive.Put(ctx, storage.SubmissionKey(entry.ID), strings.NewReader(sub.Text)); err != nil {
			log.Printf("evaluation: archive %s: %v", entry.ID, err)
		}
	}
	if s.Events != nil {
		if err := s.Events.Record(ctx, syncx.TypeEvaluationScored, entry.ID, entry); err != nil {
			log.Printf("evaluation: record event %s: %v", entry.ID, err)
		}
	}
	return rep, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
