package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	syncx "github.com/mind-engage/writescore/internal/sync"
	"github.com/mind-engage/writescore/internal/topic"
)

// GET /topics
func ListTopicsHandler(store topic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /topics/{topicID}
func GetTopicHandler(store topic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := store.Get(r.Context(), chi.URLParam(r, "topicID"))
		if errors.Is(err, topic.ErrNotFound) {
			http.Error(w, "topic not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, t)
	}
}

// PUT /topics/{topicID}  { "title": "...", "format": "essay|email", "keywords": [...] }
//
// Creates or replaces a topic. The id in the path wins over any id in the body.
func PutTopicHandler(store topic.Store, events Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t topic.Topic
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		t.ID = chi.URLParam(r, "topicID")
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.Put(r.Context(), t); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if events != nil {
			if err := events.Record(r.Context(), syncx.TypeTopicUpdated, t.ID, t); err != nil {
				log.Printf("topics: record event %s: %v", t.ID, err)
			}
		}
		writeJSON(w, http.StatusOK, t)
	}
}
