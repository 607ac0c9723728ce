package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/internal/infrastructure/oauth"
	"railstatus-service/pkg/logger"
)

// Performs the session API handshake once and prints the token, so the
// upstream can be checked by hand with curl.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.SessionPNRAPIPath == "" {
		log.Fatal("NEW_PNR_API_PATH is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	defer cancel()

	client := oauth.NewSessionClient(httpclient.New(cfg.UpstreamTimeout))
	handshake := oauth.HandshakeURL(cfg.SessionPNRAPIPath)
	source := oauth.NewXSRFTokenSource(ctx, client, handshake, cfg.SessionPNRAPIKeyName, logger.NewLogger(cfg.LogLevel))

	start := time.Now()
	token, err := source.Token()
	if err != nil {
		log.Fatalf("Handshake with %s failed: %v", handshake, err)
	}

	fmt.Printf("\nHandshake: %s (%s)\n", handshake, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Header:    %s: %s\n\n", oauth.HeaderName(cfg.SessionPNRAPIKeyName), token.AccessToken)
}
