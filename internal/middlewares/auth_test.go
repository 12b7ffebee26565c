package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/utils"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/3Eeeecho/go-fileportal/internal/services/admin"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubSessions struct {
	sessions map[string]*models.Session
}

func (s *stubSessions) SignIn(context.Context, string, string) (*models.Session, error) {
	return nil, xerr.ErrInvalidCredentials
}

func (s *stubSessions) SignOut(context.Context, string) error { return nil }

func (s *stubSessions) GetCurrentSession(_ context.Context, token string) (*models.Session, error) {
	if session, ok := s.sessions[token]; ok {
		return session, nil
	}
	return nil, xerr.ErrTokenInvalid
}

func (s *stubSessions) Subscribe(admin.SessionListener) func() { return func() {} }

func (s *stubSessions) Register(context.Context, string, string) (*models.User, error) {
	return nil, nil
}

type stubRoles map[string]string

func (r stubRoles) Resolve(_ context.Context, email string) string {
	if role, ok := r[email]; ok {
		return role
	}
	return models.RoleEmployee
}

func (r stubRoles) Start(admin.SessionProvider) {}
func (r stubRoles) Stop()                      {}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	sessions := &stubSessions{sessions: map[string]*models.Session{
		"emp-token": {ID: "s1", User: models.SessionUser{Email: "emp@corp.test"}},
		"mgr-token": {ID: "s2", User: models.SessionUser{Email: "boss@corp.test"}},
	}}
	roles := stubRoles{"boss@corp.test": models.RoleManager}

	r := gin.New()
	authed := r.Group("/", AuthMiddleware(sessions, roles))
	authed.GET("/whoami", func(c *gin.Context) {
		actor, _ := utils.GetActorFromContext(c)
		c.String(http.StatusOK, actor.Email+"|"+actor.Role)
	})
	authed.GET("/reports", RequireRole(models.RoleManager, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newTestEngine()

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/whoami", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/whoami", "Token emp-token").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "/whoami", "Bearer unknown").Code)

	w := doRequest(r, "/whoami", "Bearer emp-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "emp@corp.test|employee", w.Body.String())

	w = doRequest(r, "/whoami", "bearer mgr-token")
	assert.Equal(t, "boss@corp.test|manager", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := newTestEngine()

	assert.Equal(t, http.StatusForbidden, doRequest(r, "/reports", "Bearer emp-token").Code)
	assert.Equal(t, http.StatusOK, doRequest(r, "/reports", "Bearer mgr-token").Code)
}
