package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/security"
	"challenge-hub/backend/internal/server/httpctx"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *security.TokenProvider) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("token provider: %v", err)
	}

	r := gin.New()
	r.Use(Auth(tokens))
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := httpctx.GetUserID(c.Request.Context())
		sessionID, _ := httpctx.GetSessionID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "session_id": sessionID})
	})
	return r, tokens
}

func TestAuth_ValidToken(t *testing.T) {
	r, tokens := newAuthRouter(t)
	token, _, _, err := tokens.IssueAccess("sess-1", "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, "user-1") || !strings.Contains(body, "sess-1") {
		t.Fatalf("body = %s", body)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	r, tokens := newAuthRouter(t)
	token, _, _, err := tokens.IssueAccess("sess-1", "user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}
