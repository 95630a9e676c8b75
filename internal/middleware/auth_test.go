package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/services"
)

// fakeAuthService accepts a fixed set of tokens and maps each to a principal.
type fakeAuthService struct {
	principals map[string]*requestdata.Principal
}

func (fa *fakeAuthService) LoginWithPassword(ctx context.Context, email, password string) (string, *requestdata.Principal, error) {
	return "", nil, apierr.InvalidCredentials()
}

func (fa *fakeAuthService) LoginWithProvider(ctx context.Context, profile *services.OAuthProfile) (string, *requestdata.Principal, error) {
	return "", nil, apierr.InvalidCredentials()
}

func (fa *fakeAuthService) DecodeToken(token string) (*requestdata.Principal, error) {
	if p, ok := fa.principals[token]; ok {
		return p, nil
	}
	return nil, apierr.Unauthenticated()
}

func (fa *fakeAuthService) IsAdmin(email string, claimed bool) bool {
	return claimed
}

func (fa *fakeAuthService) GetAccessTTL() time.Duration { return time.Hour }

func testRouter(auth services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(logger.NewNop(), auth)
	router := gin.New()

	admin := router.Group("/admin")
	admin.Use(am.RequireSession("/admin/login"))
	admin.GET("/dashboard", func(c *gin.Context) {
		p := requestdata.GetPrincipal(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"email": p.Email})
	})

	api := router.Group("/api")
	api.Use(am.RequireAuth())
	api.GET("/me", func(c *gin.Context) {
		p := requestdata.GetPrincipal(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"email": p.Email})
	})

	adminAPI := router.Group("/api/admin")
	adminAPI.Use(am.RequireAuth(), am.RequireAdmin())
	adminAPI.POST("/things", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func fakeAuth() *fakeAuthService {
	return &fakeAuthService{principals: map[string]*requestdata.Principal{
		"member-token": {UserID: uuid.New(), Email: "fan@example.com"},
		"admin-token":  {UserID: uuid.Nil, Email: "admin@veraroam.test", IsAdmin: true},
	}}
}

func TestRequireSession_RedirectsAnonymousToLogin(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to /admin/login, got %q", loc)
	}
}

func TestRequireSession_PassesValidCookie(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "member-token"})
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
}

func TestRequireAuth_RejectsWithJSON401(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("API guard must not redirect, got Location %q", loc)
	}
}

func TestRequireAuth_AcceptsBearerHeader(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer member-token")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuth_IgnoresTokenInQueryString(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me?token=member-token", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("query-string tokens must not authenticate, got %d", rec.Code)
	}
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/things", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "member-token"})
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	router := testRouter(fakeAuth())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/things", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "admin-token"})
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAttachSession_NeverRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	am := NewAuthMiddleware(logger.NewNop(), fakeAuth())
	router := gin.New()
	router.GET("/session", am.AttachSession(), func(c *gin.Context) {
		if p := requestdata.GetPrincipal(c.Request.Context()); p != nil {
			c.JSON(http.StatusOK, gin.H{"authenticated": true, "email": p.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous session probe must succeed, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "member-token"})
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authenticated session probe must succeed, got %d", rec.Code)
	}
}
