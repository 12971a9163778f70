package rbac

const (
	PermEvaluationCreate = "evaluation:create"
	PermHistoryViewOwn   = "history:view-own"
	PermHistoryViewAll   = "history:view-all"
	PermQuizTake         = "quiz:take"
	PermTopicView        = "topic:view"
	PermTopicManage      = "topic:manage"
	PermEventsView       = "events:view" // admin only
)

// DefaultPolicy is what the HTTP API enforces. Students are anonymous
// sessions; the single teacher account manages topics and reads every
// learner's history.
var DefaultPolicy = Policy{
	"student": {
		PermEvaluationCreate,
		PermHistoryViewOwn,
		PermQuizTake,
		PermTopicView,
	},
	"teacher": {
		PermTopicView,
		PermTopicManage,
		PermHistoryViewAll,
		PermEvaluationCreate,
		PermQuizTake,
	},
	"admin": {
		"*", // everything
	},
}
