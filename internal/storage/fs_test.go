package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFSStore(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewFSStore(base)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	key := SubmissionKey("abc")
	if err := s.Put(ctx, key, strings.NewReader("My hobby is chess.")); err != nil {
		t.Fatalf("put: %v", err)
	}
	rc, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(rc)
	rc.Close()
	if string(b) != "My hobby is chess." {
		t.Fatalf("unexpected content %q", b)
	}
	if _, err := os.Stat(filepath.Join(base, "submissions", "abc.txt")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	if _, err := s.Get(ctx, SubmissionKey("missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Put(ctx, "", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for empty key")
	}

	// keys cannot climb out of the base directory
	if err := s.Put(ctx, "../../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "escape.txt")); err != nil {
		t.Fatalf("expected escaped key to land inside base: %v", err)
	}
}
