package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/writescore/internal/auth"
	authmw "github.com/mind-engage/writescore/internal/auth/middleware"
	"github.com/mind-engage/writescore/internal/history"
	"github.com/mind-engage/writescore/internal/rbac"
	"github.com/mind-engage/writescore/internal/storage"
	"github.com/mind-engage/writescore/internal/topic"
)

type Deps struct {
	Auth          *authmw.AuthService
	AdminUser     string
	AdminPassHash string
	SecureCookies bool

	Topics    topic.Store
	History   history.Store
	Evaluator Evaluator
	Archive   storage.BlobStore // nil disables submission texts

	// Events is nil when history is not kept in SQL.
	Events interface {
		Recorder
		EventLister
	}
	// Ready reports backing store health for /readyz.
	Ready func(ctx context.Context) error
}

// Mount registers every route on r.
func Mount(r chi.Router, d Deps) {
	r.Post("/auth/session", auth.SessionHandler(d.Auth, d.SecureCookies))
	r.Post("/auth/login", authmw.LoginHandler(d.Auth, d.AdminUser, d.AdminPassHash))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if d.Ready != nil {
			if err := d.Ready(r.Context()); err != nil {
				http.Error(w, "not ready: "+err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	var rec Recorder
	if d.Events != nil {
		rec = d.Events
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(authmw.JWTMiddleware(d.Auth))

		pr.With(rbac.Require(rbac.PermTopicView)).
			Get("/topics", ListTopicsHandler(d.Topics))
		pr.With(rbac.Require(rbac.PermTopicView)).
			Get("/topics/{topicID}", GetTopicHandler(d.Topics))
		pr.With(rbac.Require(rbac.PermTopicManage)).
			Put("/topics/{topicID}", PutTopicHandler(d.Topics, rec))

		pr.With(rbac.Require(rbac.PermEvaluationCreate)).
			Post("/evaluations", EvaluateHandler(d.Evaluator))

		pr.With(rbac.RequireAny(rbac.PermHistoryViewOwn, rbac.PermHistoryViewAll)).
			Get("/history", ListHistoryHandler(d.History))
		pr.With(rbac.RequireAny(rbac.PermHistoryViewOwn, rbac.PermHistoryViewAll)).
			Get("/history/progress", ProgressHandler(d.History))
		if d.Archive != nil {
			pr.With(rbac.RequireAny(rbac.PermHistoryViewOwn, rbac.PermHistoryViewAll)).
				Get("/history/{entryID}/text", SubmissionTextHandler(d.History, d.Archive))
		}

		pr.With(rbac.Require(rbac.PermQuizTake)).
			Get("/quiz", QuizHandler())
		pr.With(rbac.Require(rbac.PermQuizTake)).
			Post("/quiz/check", QuizCheckHandler())

		if d.Events != nil {
			pr.With(rbac.Require(rbac.PermEventsView)).
				Get("/events", ListEventsHandler(d.Events))
		}
	})
}
