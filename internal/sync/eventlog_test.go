package syncx

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mind-engage/writescore/internal/db"
)

func TestRecordAndSince(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:events_"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbh.Close()

	repo := NewEventRepo(dbh, "")
	for i, key := range []string{"h1", "h2", "h3"} {
		if err := repo.Record(ctx, TypeEvaluationScored, key, map[string]int{"points": i}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	all, err := repo.Since(ctx, 0, 0)
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].SiteID != "local" || all[0].Type != TypeEvaluationScored || all[0].Key != "h1" {
		t.Fatalf("unexpected first event %+v", all[0])
	}
	var payload map[string]int
	if err := json.Unmarshal([]byte(all[2].DataJSON), &payload); err != nil || payload["points"] != 2 {
		t.Fatalf("unexpected payload %q (%v)", all[2].DataJSON, err)
	}

	tail, err := repo.Since(ctx, all[0].Offset, 1)
	if err != nil {
		t.Fatalf("since offset: %v", err)
	}
	if len(tail) != 1 || tail[0].Key != "h2" {
		t.Fatalf("unexpected tail %+v", tail)
	}

	if err := repo.Record(ctx, TypeEvaluationScored, "bad", func() {}); err == nil {
		t.Fatal("expected marshal error")
	}
}
