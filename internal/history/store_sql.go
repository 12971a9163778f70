package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO history (id,subject,topic_id,points,day,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.Subject, e.TopicID, e.Points, e.Date, e.CreatedAt.UnixNano())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,subject,topic_id,points,day,created_at FROM history WHERE id=$1`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Entry, error) {
	var (
		where []string
		args  []any
	)
	if opts.Subject != "" {
		args = append(args, opts.Subject)
		where = append(where, fmt.Sprintf("subject=$%d", len(args)))
	}
	if opts.TopicID != "" {
		args = append(args, opts.TopicID)
		where = append(where, fmt.Sprintf("topic_id=$%d", len(args)))
	}
	q := `SELECT id,subject,topic_id,points,day,created_at FROM history`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at ASC, id ASC"
	if opts.Limit > 0 || opts.Offset > 0 {
		// sqlite wants a LIMIT before any OFFSET
		limit := opts.Limit
		if limit <= 0 {
			limit = math.MaxInt32
		}
		args = append(args, limit, opts.Offset)
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	return s.query(ctx, q, args...)
}

func (s *SQLStore) Recent(ctx context.Context, subject string, n int) ([]Entry, error) {
	if n <= 0 {
		return s.List(ctx, ListOpts{Subject: subject})
	}
	out, err := s.query(ctx, `SELECT id,subject,topic_id,points,day,created_at FROM history
		WHERE subject=$1 ORDER BY created_at DESC, id DESC LIMIT $2`, subject, n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *SQLStore) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var e Entry
	var created int64
	if err := sc.Scan(&e.ID, &e.Subject, &e.TopicID, &e.Points, &e.Date, &created); err != nil {
		return Entry{}, err
	}
	e.CreatedAt = time.Unix(0, created).UTC()
	return e, nil
}
