package gcalendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestLoadToken_Missing(t *testing.T) {
	_, err := LoadToken(filepath.Join(t.TempDir(), "token.json"))
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	tok := &oauth2.Token{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	if err := SaveToken(path, tok); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadToken(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.AccessToken != "a" || got.RefreshToken != "r" || !got.Expiry.Equal(tok.Expiry) {
		t.Errorf("unexpected token: %+v", got)
	}
}

func TestPersistingTokenSource_WritesRefreshedToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "fresh", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "token.json")
	expired := &oauth2.Token{AccessToken: "stale", RefreshToken: "refresh-me", Expiry: time.Now().Add(-time.Hour)}

	cfg := &oauth2.Config{ClientID: "id", ClientSecret: "secret", Endpoint: oauth2.Endpoint{TokenURL: ts.URL}}
	src := newPersistingTokenSource(cfg.TokenSource(context.Background(), expired), path, expired)

	tok, err := src.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if tok.AccessToken != "fresh" {
		t.Fatalf("expected refreshed token, got %q", tok.AccessToken)
	}

	saved, err := LoadToken(path)
	if err != nil {
		t.Fatalf("refreshed token was not saved: %v", err)
	}
	if saved.AccessToken != "fresh" || saved.RefreshToken != "refresh-me" {
		t.Errorf("unexpected saved token: %+v", saved)
	}
}

func TestPersistingTokenSource_RefreshFailureIsUnauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Token has been expired or revoked."}`))
	}))
	defer ts.Close()

	expired := &oauth2.Token{AccessToken: "stale", RefreshToken: "revoked", Expiry: time.Now().Add(-time.Hour)}
	cfg := &oauth2.Config{ClientID: "id", ClientSecret: "secret", Endpoint: oauth2.Endpoint{TokenURL: ts.URL}}
	src := newPersistingTokenSource(cfg.TokenSource(context.Background(), expired), filepath.Join(t.TempDir(), "token.json"), expired)

	_, err := src.Token()
	if err == nil {
		t.Fatal("expected refresh error")
	}
	if !errors.Is(classify(err), ErrUnauthorized) {
		t.Errorf("expected refresh failure to classify as unauthorized, got %v", err)
	}
}
