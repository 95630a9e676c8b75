package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestLoginURL_CarriesClientAndState(t *testing.T) {
	provider := NewGoogleOAuthProvider(GoogleOAuthConfig{
		ClientID:    "client-1",
		RedirectURL: "https://app.test/callback",
	})

	raw := provider.LoginURL("state-xyz")
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("login url does not parse: %v", err)
	}
	q := parsed.Query()
	if q.Get("client_id") != "client-1" {
		t.Fatalf("client_id missing: %q", raw)
	}
	if q.Get("state") != "state-xyz" {
		t.Fatalf("state missing: %q", raw)
	}
	if q.Get("response_type") != "code" {
		t.Fatalf("response_type missing: %q", raw)
	}
}

func TestExchangeCode_FetchesProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if r.PostForm.Get("code") != "auth-code" || r.PostForm.Get("grant_type") != "authorization_code" {
			t.Fatalf("unexpected token request: %v", r.PostForm)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer at-1" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"sub-9","email":"traveler@example.com","name":"Traveler","picture":"https://lh3.test/p.jpg"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	provider := NewGoogleOAuthProvider(GoogleOAuthConfig{
		ClientID:     "client-1",
		ClientSecret: "secret",
		RedirectURL:  "https://app.test/callback",
		TokenURL:     srv.URL + "/token",
		UserInfoURL:  srv.URL + "/userinfo",
	})

	profile, err := provider.ExchangeCode(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if profile.Provider != "google" || profile.Sub != "sub-9" || profile.Email != "traveler@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestExchangeCode_TokenEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	provider := NewGoogleOAuthProvider(GoogleOAuthConfig{
		TokenURL:    srv.URL,
		UserInfoURL: srv.URL,
	})

	_, err := provider.ExchangeCode(context.Background(), "expired-code")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "token endpoint") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExchangeCode_RejectsProfileWithoutSub(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1"}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"traveler@example.com"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	provider := NewGoogleOAuthProvider(GoogleOAuthConfig{
		TokenURL:    srv.URL + "/token",
		UserInfoURL: srv.URL + "/userinfo",
	})

	if _, err := provider.ExchangeCode(context.Background(), "code"); err == nil {
		t.Fatalf("expected error for profile without sub")
	}
}
