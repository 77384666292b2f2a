package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"challenge-hub/backend/internal/audit"
	"challenge-hub/backend/internal/audit/domain"
	"challenge-hub/backend/internal/server/httpctx"
)

type memAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (m *memAuditRepo) GetByID(context.Context, string) (*domain.AuditLog, error) { return nil, nil }
func (m *memAuditRepo) List(context.Context, int32, int32) ([]*domain.AuditLog, error) {
	return nil, nil
}
func (m *memAuditRepo) ListByUser(context.Context, string, int32, int32) ([]*domain.AuditLog, error) {
	return nil, nil
}

func (m *memAuditRepo) Create(_ context.Context, entry *domain.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func newAuditRouter(repo *memAuditRepo, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Request = c.Request.WithContext(httpctx.WithIdentity(c.Request.Context(), userID, "sess-1"))
		}
		c.Next()
	})
	r.Use(Audit(audit.NewLogger(repo, httpctx.ClientIP)))
	r.POST("/api/v1/participations", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestAudit_RecordsAuthenticatedRequest(t *testing.T) {
	repo := &memAuditRepo{}
	r := newAuditRouter(repo, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/participations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.UserID != "user-1" {
		t.Errorf("user_id = %s", entry.UserID)
	}
	if entry.Action != "create" || entry.Resource != "participation" {
		t.Errorf("action/resource = %s/%s", entry.Action, entry.Resource)
	}
	if entry.IP == "" || entry.IP == "unknown" {
		t.Errorf("ip = %q, want the client address", entry.IP)
	}
}

func TestAudit_SkipsUnauthenticatedRequest(t *testing.T) {
	repo := &memAuditRepo{}
	r := newAuditRouter(repo, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/participations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if len(repo.entries) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(repo.entries))
	}
}
