package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/writescore/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("session|abc", RoleStudent)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	c, err := a.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Sub != "session|abc" || c.Role != RoleStudent {
		t.Fatalf("unexpected claims %+v", c)
	}

	if _, err := NewAuthService("other").Parse(tok); err == nil {
		t.Fatal("expected signature error")
	}

	expired := NewAuthService("test-secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * TokenTTL) }
	old, _ := expired.IssueJWT("x", RoleStudent)
	if _, err := a.Parse(old); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := NewAuthService("test-secret")
	var (
		gotSub, gotRole string
		gotSession      Session
	)
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
		gotSession, _ = SessionFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing bearer: got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nonsense")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d", rec.Code)
	}

	tok, _ := a.IssueJWT("teacher", RoleTeacher)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || gotSub != "teacher" || gotRole != RoleTeacher {
		t.Fatalf("got %d sub=%q role=%q", rec.Code, gotSub, gotRole)
	}
	if gotSession != (Session{Subject: "teacher", Role: RoleTeacher}) {
		t.Fatalf("unexpected session %+v", gotSession)
	}
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAuthService("test-secret")
	h := LoginHandler(a, "ms-smith", string(hash))

	cases := []struct {
		body string
		want int
	}{
		{`{"username":"ms-smith","password":"s3cret"}`, http.StatusOK},
		{`{"username":"ms-smith","password":"wrong"}`, http.StatusUnauthorized},
		{`{"username":"other","password":"s3cret"}`, http.StatusUnauthorized},
		{`{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body)))
		if rec.Code != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.body, rec.Code, tc.want)
		}
		if tc.want != http.StatusOK {
			continue
		}
		var out map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		c, err := a.Parse(out["access_token"])
		if err != nil || c.Role != RoleTeacher || c.Sub != "ms-smith" {
			t.Fatalf("unexpected token claims %+v (%v)", c, err)
		}
	}
}
