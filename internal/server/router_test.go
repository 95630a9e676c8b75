package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/handlers"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/middleware"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/services"
)

type stubAuthService struct{}

func (sa *stubAuthService) LoginWithPassword(ctx context.Context, email, password string) (string, *requestdata.Principal, error) {
	return "", nil, apierr.InvalidCredentials()
}

func (sa *stubAuthService) LoginWithProvider(ctx context.Context, profile *services.OAuthProfile) (string, *requestdata.Principal, error) {
	return "", nil, apierr.InvalidCredentials()
}

func (sa *stubAuthService) DecodeToken(token string) (*requestdata.Principal, error) {
	if token == "valid-session" {
		return &requestdata.Principal{UserID: uuid.Nil, Email: "admin@veraroam.test", IsAdmin: true}, nil
	}
	return nil, apierr.Unauthenticated()
}

func (sa *stubAuthService) IsAdmin(email string, claimed bool) bool { return claimed }

func (sa *stubAuthService) GetAccessTTL() time.Duration { return time.Hour }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := &stubAuthService{}
	return NewRouter(RouterConfig{
		AllowOrigins:   []string{"http://localhost:3000"},
		AuthHandler:    handlers.NewAuthHandler(auth, nil, "/admin"),
		AuthMiddleware: middleware.NewAuthMiddleware(logger.NewNop(), auth),
	})
}

func get(router *gin.Engine, path string, cookie string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: cookie})
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_EveryAdminPathRedirectsAnonymousToLogin(t *testing.T) {
	router := newTestRouter()

	paths := []string{
		"/admin",
		"/admin/photos",
		"/admin/dashboard",
		"/admin/events/new",
		"/admin/deeply/nested/page",
	}
	for _, path := range paths {
		rec := get(router, path, "")
		if rec.Code != http.StatusFound {
			t.Fatalf("GET %s: expected 302, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/admin/login" {
			t.Fatalf("GET %s: expected redirect to /admin/login, got %q", path, loc)
		}
	}
}

func TestRouter_AdminPathsServeWithValidSession(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/admin", "/admin/photos", "/admin/dashboard"} {
		rec := get(router, path, "valid-session")
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_LoginPageIsReachableAnonymously(t *testing.T) {
	router := newTestRouter()

	rec := get(router, "/admin/login", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_NonAdminUnknownPathIs404(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/nope", "/administrator", "/api/nope"} {
		rec := get(router, path, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("GET %s: expected 404, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "" {
			t.Fatalf("GET %s: must not redirect, got Location %q", path, loc)
		}
	}
}
