package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/mind-engage/writescore/internal/auth/middleware"
	"github.com/mind-engage/writescore/internal/history"
	"github.com/mind-engage/writescore/internal/rbac"
	"github.com/mind-engage/writescore/internal/storage"
)

// historySubject picks whose history a request may read. Callers with
// history:view-all may name any subject (or none, for everyone); everybody
// else is pinned to their own.
func historySubject(r *http.Request) string {
	sub := authmw.SubjectFromContext(r.Context())
	if rbac.Can(r.Context(), rbac.PermHistoryViewAll) {
		if q, ok := r.URL.Query()["subject"]; ok {
			return strings.TrimSpace(q[0])
		}
	}
	return sub
}

// GET /history?subject=...&topic_id=...&limit=50&offset=0
func ListHistoryHandler(store history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context(), history.ListOpts{
			Subject: historySubject(r),
			TopicID: strings.TrimSpace(r.URL.Query().Get("topic_id")),
			Limit:   parseIntDefault(r.URL.Query().Get("limit"), 50),
			Offset:  parseIntDefault(r.URL.Query().Get("offset"), 0),
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []history.Entry{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /history/progress?subject=...
func ProgressHandler(store history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := historySubject(r)
		if sub == "" {
			http.Error(w, "subject required", http.StatusBadRequest)
			return
		}
		recent, err := store.Recent(r.Context(), sub, history.ProgressWindow)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"subject":  sub,
			"progress": history.Progress(recent),
		})
	}
}

// GET /history/{entryID}/text
//
// Returns the archived submission behind a history entry. Learners can read
// their own; history:view-all reads anyone's.
func SubmissionTextHandler(store history.Store, archive storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := store.Get(r.Context(), chi.URLParam(r, "entryID"))
		if errors.Is(err, history.ErrNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if e.Subject != authmw.SubjectFromContext(r.Context()) && !rbac.Can(r.Context(), rbac.PermHistoryViewAll) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}
		rc, err := archive.Get(r.Context(), storage.SubmissionKey(e.ID))
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "text not archived", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.Copy(w, rc)
	}
}
