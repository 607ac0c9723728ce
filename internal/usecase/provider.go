package usecase

import (
	"railstatus-service/internal/domain/repository"
)

// PNRProvider is a PNR adapter selectable by configured name
type PNRProvider interface {
	repository.PNRRepository

	// CanHandle determines if this adapter serves the given provider name
	CanHandle(name string) bool
}

// TrainRunProvider is a live status adapter selectable by configured name
type TrainRunProvider interface {
	repository.TrainRunRepository

	// CanHandle determines if this adapter serves the given provider name
	CanHandle(name string) bool
}
