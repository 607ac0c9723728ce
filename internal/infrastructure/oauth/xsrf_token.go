package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"path"
	"strings"

	"railstatus-service/pkg/logger"

	"golang.org/x/oauth2"
)

// TokenTypeXSRF marks tokens obtained from a cookie handshake.
const TokenTypeXSRF = "XSRF"

// XSRFTokenSource obtains an anti-forgery token by loading a page that sets
// it as a cookie. The client must carry a cookie jar so the session cookie
// set alongside the token is replayed on the follow-up request.
type XSRFTokenSource struct {
	ctx          context.Context
	client       *http.Client
	handshakeURL string
	cookieName   string
	logger       logger.Logger
}

// NewXSRFTokenSource creates a token source for the given handshake page and cookie.
func NewXSRFTokenSource(ctx context.Context, client *http.Client, handshakeURL, cookieName string, logger logger.Logger) *XSRFTokenSource {
	return &XSRFTokenSource{
		ctx:          ctx,
		client:       client,
		handshakeURL: handshakeURL,
		cookieName:   cookieName,
		logger:       logger,
	}
}

// NewSessionClient returns a copy of base with a fresh cookie jar.
func NewSessionClient(base *http.Client) *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Transport: base.Transport,
		Timeout:   base.Timeout,
		Jar:       jar,
	}
}

// GetTokenSource returns a token source that performs the handshake at most once.
func (s *XSRFTokenSource) GetTokenSource() oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, s)
}

// Token implements oauth2.TokenSource.
func (s *XSRFTokenSource) Token() (*oauth2.Token, error) {
	req, err := http.NewRequestWithContext(s.ctx, http.MethodGet, s.handshakeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create handshake request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send handshake request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	raw := s.findCookie(resp)
	if raw == "" {
		return nil, fmt.Errorf("failed to retrieve %s from cookies (status %d)", s.cookieName, resp.StatusCode)
	}

	value, err := url.PathUnescape(raw)
	if err != nil {
		value = raw
	}

	s.logger.Debug("XSRF token obtained", "cookie", s.cookieName)

	return &oauth2.Token{
		AccessToken: value,
		TokenType:   TokenTypeXSRF,
	}, nil
}

func (s *XSRFTokenSource) findCookie(resp *http.Response) string {
	if s.client.Jar != nil {
		if u, err := url.Parse(s.handshakeURL); err == nil {
			for _, c := range s.client.Jar.Cookies(u) {
				if c.Name == s.cookieName {
					return c.Value
				}
			}
		}
	}
	for _, c := range resp.Cookies() {
		if c.Name == s.cookieName {
			return c.Value
		}
	}
	return ""
}

// HeaderName is the request header that echoes the token, e.g. X-XSRF-TOKEN.
func HeaderName(cookieName string) string {
	return "X-" + cookieName
}

// HandshakeURL derives the handshake page from the API path by dropping its last segment.
func HandshakeURL(apiPath string) string {
	u, err := url.Parse(apiPath)
	if err != nil || u.Path == "" {
		return apiPath
	}
	u.Path = strings.TrimSuffix(path.Dir(u.Path), "/")
	u.RawPath = ""
	u.RawQuery = ""
	return u.String()
}
