package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"railstatus-service/pkg/logger"
)

func TestXSRFTokenSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "abc%3D%3D", Path: "/"})
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewSessionClient(srv.Client())
	src := NewXSRFTokenSource(context.Background(), client, srv.URL+"/api", "XSRF-TOKEN", logger.NewNopLogger())

	token, err := src.GetTokenSource().Token()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.AccessToken != "abc==" {
		t.Errorf("expected decoded token abc==, got %s", token.AccessToken)
	}
	if token.TokenType != TokenTypeXSRF {
		t.Errorf("expected token type %s, got %s", TokenTypeXSRF, token.TokenType)
	}
}

func TestXSRFTokenSourceMissingCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewSessionClient(srv.Client())
	src := NewXSRFTokenSource(context.Background(), client, srv.URL, "XSRF-TOKEN", logger.NewNopLogger())

	if _, err := src.Token(); err == nil {
		t.Error("expected error when the cookie is missing")
	}
}

func TestHandshakeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/api/pnr/status", "https://example.com/api/pnr"},
		{"https://example.com/status", "https://example.com"},
		{"https://example.com", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := HandshakeURL(tt.in); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestHeaderName(t *testing.T) {
	if got := HeaderName("XSRF-TOKEN"); got != "X-XSRF-TOKEN" {
		t.Errorf("expected X-XSRF-TOKEN, got %s", got)
	}
}
