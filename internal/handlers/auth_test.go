package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/middleware"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/services"
)

type fakeAuthService struct {
	email    string
	password string
}

func (fa *fakeAuthService) LoginWithPassword(ctx context.Context, email, password string) (string, *requestdata.Principal, error) {
	if email == fa.email && password == fa.password {
		return "issued-token", &requestdata.Principal{
			UserID:  uuid.Nil,
			Email:   email,
			Name:    "Administrator",
			IsAdmin: true,
		}, nil
	}
	return "", nil, apierr.InvalidCredentials()
}

func (fa *fakeAuthService) LoginWithProvider(ctx context.Context, profile *services.OAuthProfile) (string, *requestdata.Principal, error) {
	return "provider-token", &requestdata.Principal{UserID: uuid.New(), Email: profile.Email}, nil
}

func (fa *fakeAuthService) DecodeToken(token string) (*requestdata.Principal, error) {
	return nil, apierr.Unauthenticated()
}

func (fa *fakeAuthService) IsAdmin(email string, claimed bool) bool { return claimed }

func (fa *fakeAuthService) GetAccessTTL() time.Duration { return time.Hour }

type fakeOAuthProvider struct{}

func (fp *fakeOAuthProvider) LoginURL(state string) string {
	return "https://accounts.test/auth?state=" + state
}

func (fp *fakeOAuthProvider) ExchangeCode(ctx context.Context, code string) (*services.OAuthProfile, error) {
	if code != "good-code" {
		return nil, apierr.InvalidCredentials()
	}
	return &services.OAuthProfile{Provider: "google", Sub: "sub-1", Email: "traveler@example.com"}, nil
}

func newAuthHandlerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ah := NewAuthHandler(
		&fakeAuthService{email: "admin@veraroam.test", password: "pw"},
		&fakeOAuthProvider{},
		"/admin",
	)
	router := gin.New()
	router.POST("/api/auth/login", ah.Login)
	router.GET("/api/auth/oauth/url", ah.OAuthURL)
	router.GET("/api/auth/oauth/callback", ah.OAuthCallback)
	router.POST("/api/auth/logout", ah.Logout)
	return router
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_SetsCookieAndReturnsUser(t *testing.T) {
	router := newAuthHandlerRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@veraroam.test","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value != "issued-token" {
		t.Fatalf("session cookie not set: %v", rec.Result().Cookies())
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("cookie max age should follow the access ttl, got %d", cookie.MaxAge)
	}
	var body struct {
		Token string `json:"token"`
		User  struct {
			Email   string `json:"email"`
			IsAdmin bool   `json:"is_admin"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Token != "issued-token" || !body.User.IsAdmin {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin_BadCredentialsIs401(t *testing.T) {
	router := newAuthHandlerRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@veraroam.test","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("failed login must not set a session cookie")
	}
}

func TestOAuthURL_IssuesStateCookie(t *testing.T) {
	router := newAuthHandlerRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/oauth/url", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state string
	for _, c := range rec.Result().Cookies() {
		if c.Name == oauthStateCookieName {
			state = c.Value
		}
	}
	if state == "" {
		t.Fatalf("state cookie not set")
	}
	var body struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !strings.Contains(body.URL, "state="+state) {
		t.Fatalf("login url %q does not carry state %q", body.URL, state)
	}
}

func TestOAuthCallback_RejectsStateMismatch(t *testing.T) {
	router := newAuthHandlerRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/callback?state=forged&code=good-code", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookieName, Value: "issued"})
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestOAuthCallback_ExchangesAndRedirects(t *testing.T) {
	router := newAuthHandlerRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/oauth/callback?state=issued&code=good-code", nil)
	req.AddCookie(&http.Cookie{Name: oauthStateCookieName, Value: "issued"})
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (%s)", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value != "provider-token" {
		t.Fatalf("session cookie not set after callback")
	}
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	router := newAuthHandlerRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Fatalf("logout must expire the session cookie: %v", cookie)
	}
}
