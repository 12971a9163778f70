package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// Recorder appends domain events; nil when no event log is configured.
type Recorder interface {
	Record(ctx context.Context, typ, key string, payload any) error
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 {
		return v
	}
	return def
}
