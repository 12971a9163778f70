// Package app assembles the stores and services both binaries share.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/mind-engage/writescore/internal/checker"
	"github.com/mind-engage/writescore/internal/config"
	"github.com/mind-engage/writescore/internal/db"
	"github.com/mind-engage/writescore/internal/evaluation"
	"github.com/mind-engage/writescore/internal/history"
	"github.com/mind-engage/writescore/internal/storage"
	syncx "github.com/mind-engage/writescore/internal/sync"
	"github.com/mind-engage/writescore/internal/topic"
)

type App struct {
	DB         *sql.DB // nil with HISTORY_DRIVER=memory
	Topics     topic.Store
	History    history.Store
	Events     *syncx.EventRepo // nil with HISTORY_DRIVER=memory
	Archive    *storage.FSStore // nil without BLOB_BASE_PATH
	Evaluation *evaluation.Service
}

// New opens storage, seeds the topic catalogue and builds the checker chain
// from cfg.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{}
	switch cfg.HistoryDriver {
	case "memory":
		a.Topics = topic.NewInMemoryStore()
		a.History = history.NewInMemoryStore()
	case "sql", "":
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		a.DB = dbh
		a.Topics = topic.NewSQLStore(dbh)
		a.History = history.NewSQLStore(dbh)
		a.Events = syncx.NewEventRepo(dbh, cfg.SiteID)
	default:
		return nil, fmt.Errorf("unknown history driver %q", cfg.HistoryDriver)
	}

	topics := topic.Defaults()
	if cfg.TopicsFile != "" {
		extra, err := topic.LoadFile(cfg.TopicsFile)
		if err != nil {
			a.Close()
			return nil, err
		}
		topics = append(topics, extra...)
	}
	if err := topic.Seed(ctx, a.Topics, topics); err != nil {
		a.Close()
		return nil, err
	}

	speller, err := newSpeller(cfg, topics)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Topics = vocabularyStore{Store: a.Topics, speller: speller}
	fb := checker.Fallback{Secondary: speller}
	if !cfg.LTDisabled {
		fb.Primary = checker.NewLanguageTool(cfg.LTEndpoint, cfg.LTLang, cfg.LTTimeout)
	}

	a.Evaluation = evaluation.NewService(a.Topics, a.History, fb)
	if a.Events != nil {
		a.Evaluation.Events = a.Events
	}
	if cfg.BlobBasePath != "" {
		if a.Archive, err = storage.NewFSStore(cfg.BlobBasePath); err != nil {
			a.Close()
			return nil, fmt.Errorf("blob store: %w", err)
		}
		a.Evaluation.Archive = a.Archive
	}
	log.Printf("app: history=%s topics=%d dictionary=%d languagetool=%t",
		cfg.HistoryDriver, len(topics), speller.Len(), fb.Primary != nil)
	return a, nil
}

// newSpeller loads the built-in dictionary plus SPELL_DICT, and teaches it
// every topic keyword so topic vocabulary is never flagged.
func newSpeller(cfg config.Config, topics []topic.Topic) (*checker.Speller, error) {
	var (
		s   *checker.Speller
		err error
	)
	if cfg.SpellDict != "" {
		s, err = checker.NewSpellerFromFile(cfg.SpellDict)
	} else {
		s, err = checker.NewSpeller()
	}
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	for _, t := range topics {
		s.Add(t.Keywords...)
	}
	return s, nil
}

// vocabularyStore teaches the speller the keywords of every topic saved
// after startup.
type vocabularyStore struct {
	topic.Store
	speller *checker.Speller
}

func (v vocabularyStore) Put(ctx context.Context, t topic.Topic) error {
	if err := v.Store.Put(ctx, t); err != nil {
		return err
	}
	v.speller.Add(t.Keywords...)
	return nil
}

// Ready pings the database when there is one.
func (a *App) Ready(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.PingContext(ctx)
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
