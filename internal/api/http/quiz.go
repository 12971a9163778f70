package http

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"

	"github.com/mind-engage/writescore/internal/quiz"
)

// GET /quiz?n=3
func QuizHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := parseIntDefault(r.URL.Query().Get("n"), len(quiz.Bank))
		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		writeJSON(w, http.StatusOK, quiz.Draw(rng, n))
	}
}

// POST /quiz/check  { "answers": { "<question id>": "<option>" } }
func QuizCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers map[string]string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, quiz.Check(req.Answers))
	}
}
