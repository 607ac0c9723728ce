package repository

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/pkg/logger"
)

// countingServer serves handler and counts the requests it receives.
func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testConfig(base string) *config.Config {
	return &config.Config{
		IRCTCPNRAPIBase:       base + "/pnr",
		IRCTCPNRAPIKey:        "secret",
		IRCTCPNRAPIHost:       "irctc.example.com",
		IRCTCPNRAPIHeaderKey:  "x-rapidapi-key",
		IRCTCPNRAPIHeaderHost: "x-rapidapi-host",
		SessionPNRAPIPath:     base + "/api/pnr/status",
		SessionPNRAPIKeyName:  "XSRF-TOKEN",
		TrainStatusAPIBase:    base + "/live",
		LegacyStatusAPIBase:   base,
	}
}

var (
	testClient = httpclient.New(0)
	testLogger = logger.NewNopLogger()
)
