package usecase

import (
	"context"
	"fmt"
	"strings"

	"railstatus-service/internal/domain/repository"
	"railstatus-service/internal/report"
	"railstatus-service/pkg/logger"
	"railstatus-service/pkg/metrics"
)

// SearchService resolves station and train names to codes
type SearchService struct {
	searchRepo repository.SearchRepository
	limit      int
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewSearchService creates a new search service returning at most limit matches
func NewSearchService(searchRepo repository.SearchRepository, limit int, m *metrics.Metrics, logger logger.Logger) *SearchService {
	return &SearchService{
		searchRepo: searchRepo,
		limit:      limit,
		metrics:    m,
		logger:     logger,
	}
}

func normalizeQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	return q, nil
}

// Stations lists stations matching query. An unavailable upstream is reported as no matches.
func (s *SearchService) Stations(ctx context.Context, query string) (string, error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return "", err
	}

	matches, err := s.searchRepo.SearchStations(ctx, q, s.limit)
	if err != nil {
		s.metrics.Error("search_stations")
		s.logger.Warn("Station search failed", "query", q, "error", err)
		matches = nil
	}

	s.metrics.ReportRendered("station_search")
	return report.StationMatches(q, matches), nil
}

// Trains lists trains matching query. An unavailable upstream is reported as no matches.
func (s *SearchService) Trains(ctx context.Context, query string) (string, error) {
	q, err := normalizeQuery(query)
	if err != nil {
		return "", err
	}

	matches, err := s.searchRepo.SearchTrains(ctx, q, s.limit)
	if err != nil {
		s.metrics.Error("search_trains")
		s.logger.Warn("Train search failed", "query", q, "error", err)
		matches = nil
	}

	s.metrics.ReportRendered("train_search")
	return report.TrainMatches(q, matches), nil
}
