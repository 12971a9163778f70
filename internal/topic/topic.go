package topic

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNotFound = errors.New("topic not found")

// Submission formats.
const (
	FormatEssay = "essay"
	FormatEmail = "email"
)

type Topic struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Format   string   `json:"format" yaml:"format"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Validate trims the topic and checks required fields.
func (t *Topic) Validate() error {
	t.ID = strings.TrimSpace(t.ID)
	t.Title = strings.TrimSpace(t.Title)
	if t.ID == "" || t.Title == "" {
		return errors.New("id and title required")
	}
	switch t.Format {
	case "":
		t.Format = FormatEssay
	case FormatEssay, FormatEmail:
	default:
		return fmt.Errorf("unsupported format %q", t.Format)
	}
	kws := make([]string, 0, len(t.Keywords))
	for _, k := range t.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			kws = append(kws, k)
		}
	}
	t.Keywords = kws
	if len(t.Keywords) == 0 {
		return errors.New("at least one keyword required")
	}
	return nil
}

type Store interface {
	List(ctx context.Context) ([]Topic, error)
	Get(ctx context.Context, id string) (Topic, error)
	Put(ctx context.Context, t Topic) error
}

// Seed stores every topic; later entries override earlier ones with the same ID.
func Seed(ctx context.Context, s Store, topics []Topic) error {
	for _, t := range topics {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("topic %q: %w", t.ID, err)
		}
		if err := s.Put(ctx, t); err != nil {
			return fmt.Errorf("seed topic %q: %w", t.ID, err)
		}
	}
	return nil
}

type catalogFile struct {
	Topics []Topic `yaml:"topics"`
}

// LoadFile reads a YAML catalogue:
//
//	topics:
//	  - id: last-holiday
//	    title: Describe your last holiday
//	    keywords: [holiday, trip, beach]
func LoadFile(path string) ([]Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topics file: %w", err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("unmarshal topics yaml: %w", err)
	}
	for i := range cf.Topics {
		if err := cf.Topics[i].Validate(); err != nil {
			return nil, fmt.Errorf("topic %d (%q): %w", i, cf.Topics[i].ID, err)
		}
	}
	return cf.Topics, nil
}

// Defaults is the built-in catalogue.
func Defaults() []Topic {
	return []Topic{
		{ID: "last-holiday", Title: "Describe your last holiday", Format: FormatEssay,
			Keywords: []string{"holiday", "trip", "beach", "mountains", "memories", "visited", "hotel"}},
		{ID: "weekend-plans", Title: "Write about your plans for the coming weekend", Format: FormatEssay,
			Keywords: []string{"weekend", "going to", "plan", "cinema", "friends", "family"}},
		{ID: "meet-foreign-friend", Title: "Suggest a meeting to a friend from abroad", Format: FormatEssay,
			Keywords: []string{"meet", "visit", "place", "Poland", "invite", "schedule"}},
		{ID: "school-play", Title: "Describe your part in a school play", Format: FormatEssay,
			Keywords: []string{"school play", "role", "stage", "acting", "performance", "nervous"}},
		{ID: "school-event", Title: "Share your impressions of a school event", Format: FormatEssay,
			Keywords: []string{"event", "competition", "school", "experience", "memorable"}},
		{ID: "new-hobby", Title: "Describe your new hobby", Format: FormatEssay,
			Keywords: []string{"hobby", "started", "enjoy", "benefits", "passion"}},
		{ID: "remote-learning", Title: "Tell us about your experience of online learning", Format: FormatEssay,
			Keywords: []string{"online learning", "advantages", "disadvantages", "difficult"}},
		{ID: "school-trip", Title: "Describe a school trip you went on", Format: FormatEssay,
			Keywords: []string{"school trip", "visited", "museum", "amazing", "historical"}},
		{ID: "sightseeing-poland", Title: "Suggest sightseeing interesting places in Poland together", Format: FormatEssay,
			Keywords: []string{"sightseeing", "places", "Poland", "tour", "recommend"}},
		{ID: "event-invitation-email", Title: "Email: invite a friend to an event", Format: FormatEmail,
			Keywords: []string{"date", "invite", "event", "details", "let me know"}},
	}
}
