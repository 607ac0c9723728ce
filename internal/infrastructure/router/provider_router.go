package router

import (
	"fmt"

	"railstatus-service/pkg/logger"
)

// Provider is an upstream adapter that can be selected by its configured name.
type Provider interface {
	CanHandle(name string) bool
}

// ProviderRouter picks the adapter registered for a provider name
type ProviderRouter[T Provider] struct {
	providers []T
	logger    logger.Logger
}

// NewProviderRouter creates a new provider router
func NewProviderRouter[T Provider](logger logger.Logger) *ProviderRouter[T] {
	return &ProviderRouter[T]{
		providers: make([]T, 0),
		logger:    logger,
	}
}

// Register registers an adapter. Earlier registrations win on overlapping names.
func (r *ProviderRouter[T]) Register(provider T) {
	r.providers = append(r.providers, provider)
	r.logger.Info("Registered provider", "provider", fmt.Sprintf("%T", provider))
}

// GetProvider returns the adapter that handles name
func (r *ProviderRouter[T]) GetProvider(name string) (T, bool) {
	for _, provider := range r.providers {
		if provider.CanHandle(name) {
			return provider, true
		}
	}
	var zero T
	return zero, false
}
