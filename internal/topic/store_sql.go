package topic

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(ctx context.Context, t Topic) error {
	kj, err := json.Marshal(t.Keywords)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO topics (id,title,format,keywords_json,updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, format=EXCLUDED.format,
		  keywords_json=EXCLUDED.keywords_json, updated_at=EXCLUDED.updated_at`,
		t.ID, t.Title, t.Format, string(kj), time.Now().Unix())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Topic, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,format,keywords_json FROM topics WHERE id=$1`, id)
	t, err := scanTopic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Topic{}, ErrNotFound
	}
	return t, err
}

func (s *SQLStore) List(ctx context.Context) ([]Topic, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,title,format,keywords_json FROM topics ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTopic(sc scanner) (Topic, error) {
	var t Topic
	var kjson string
	if err := sc.Scan(&t.ID, &t.Title, &t.Format, &kjson); err != nil {
		return Topic{}, err
	}
	if err := json.Unmarshal([]byte(kjson), &t.Keywords); err != nil {
		return Topic{}, err
	}
	return t, nil
}
