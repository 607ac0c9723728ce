package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"railstatus-service/internal/domain/entity"
	"railstatus-service/internal/infrastructure/config"
	"railstatus-service/internal/infrastructure/httpclient"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
)

// SearchRepository resolves station and train names through the search endpoint.
type SearchRepository struct {
	client  *http.Client
	baseURL string
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(cfg *config.Config, client *http.Client, m *metrics.Metrics, logger logger.Logger) *SearchRepository {
	return &SearchRepository{
		client:  client,
		baseURL: strings.TrimRight(cfg.LegacyStatusAPIBase, "/"),
		metrics: m,
		logger:  logger.With("upstream", upstreamSearch),
	}
}

type searchResponse[T any] struct {
	Success bool   `json:"success"`
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
	Query   string `json:"query"`
}

// SearchStations returns stations whose name matches query
func (r *SearchRepository) SearchStations(ctx context.Context, query string, limit int) ([]entity.StationMatch, error) {
	return search[entity.StationMatch](ctx, r, "station", query, limit)
}

// SearchTrains returns trains whose name matches query
func (r *SearchRepository) SearchTrains(ctx context.Context, query string, limit int) ([]entity.TrainMatch, error) {
	return search[entity.TrainMatch](ctx, r, "train", query, limit)
}

func search[T any](ctx context.Context, r *SearchRepository, kind, query string, limit int) (matches []T, err error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveUpstream(upstreamSearch, start, err)
		r.logger.Info("Search completed", "type", kind, "query", query, "matches", len(matches),
			"latency", time.Since(start), "error", err)
	}()

	params := url.Values{}
	params.Set("type", kind)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/search?%s", r.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, unavailable("create request", err)
	}

	resp, err := httpclient.DoJSON[searchResponse[T]](r.client, req)
	if err != nil {
		return nil, unavailable("search "+kind+"s", err)
	}
	if !resp.Success {
		return nil, unavailablef("%s search rejected for %q", kind, query)
	}

	matches = resp.Data
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
