package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authmw "github.com/mind-engage/writescore/internal/auth/middleware"
)

func TestSessionHandler(t *testing.T) {
	a := authmw.NewAuthService("test-secret")
	h := SessionHandler(a, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	var out struct {
		AccessToken string `json:"access_token"`
		Subject     string `json:"subject"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(out.Subject, "session|") {
		t.Fatalf("unexpected subject %q", out.Subject)
	}
	c, err := a.Parse(out.AccessToken)
	if err != nil || c.Sub != out.Subject || c.Role != authmw.RoleStudent {
		t.Fatalf("unexpected claims %+v (%v)", c, err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookie || cookies[0].Value != out.Subject {
		t.Fatalf("unexpected cookies %+v", cookies)
	}

	// same browser keeps its session
	req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: out.Subject})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var again struct {
		Subject string `json:"subject"`
	}
	_ = json.NewDecoder(rec.Body).Decode(&again)
	if again.Subject != out.Subject {
		t.Fatalf("session not reused: %q != %q", again.Subject, out.Subject)
	}

	// foreign cookie values are not trusted
	req = httptest.NewRequest(http.MethodPost, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "teacher"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	_ = json.NewDecoder(rec.Body).Decode(&again)
	if again.Subject == "teacher" {
		t.Fatal("accepted a non-session subject from the cookie")
	}
}
