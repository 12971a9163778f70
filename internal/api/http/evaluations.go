package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	authmw "github.com/mind-engage/writescore/internal/auth/middleware"
	"github.com/mind-engage/writescore/internal/evaluation"
)

// MaxSubmissionBytes bounds the request body of an evaluation.
const MaxSubmissionBytes = 64 << 10

type Evaluator interface {
	Evaluate(ctx context.Context, subject string, sub evaluation.Submission) (evaluation.Report, error)
}

// POST /evaluations  { "topic_id": "...", "text": "..." }
func EvaluateHandler(ev Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluation.Submission
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxSubmissionBytes)).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		rep, err := ev.Evaluate(r.Context(), authmw.SubjectFromContext(r.Context()), req)
		switch {
		case errors.Is(err, evaluation.ErrEmptySubmission):
			http.Error(w, "Please enter your text first.", http.StatusBadRequest)
			return
		case errors.Is(err, evaluation.ErrTopicNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		case err != nil:
			log.Printf("evaluate: %v", err)
			http.Error(w, "evaluation failed", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}
