package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("blob not found")

// BlobStore keeps submitted texts so they can be reviewed later.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// SubmissionKey is where the text of history entry id is stored.
func SubmissionKey(id string) string {
	return "submissions/" + id + ".txt"
}
