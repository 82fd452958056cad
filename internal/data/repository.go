// Package data provides the amphibian repository and the application container
// that wires it to the network client.
package data

import (
	"context"

	"amphibians/internal/amphibian"
)

// Repository returns the amphibian list from some data source.
type Repository interface {
	GetAmphibians(ctx context.Context) ([]amphibian.Amphibian, error)
}

// Fetcher is the network call a NetworkRepository delegates to.
type Fetcher interface {
	FetchAmphibians(ctx context.Context) ([]amphibian.Amphibian, error)
}

// NetworkRepository reads amphibians straight from the remote API.
type NetworkRepository struct {
	fetcher Fetcher
}

// NewNetworkRepository wraps f.
func NewNetworkRepository(f Fetcher) *NetworkRepository {
	return &NetworkRepository{fetcher: f}
}

// GetAmphibians implements Repository.
func (r *NetworkRepository) GetAmphibians(ctx context.Context) ([]amphibian.Amphibian, error) {
	return r.fetcher.FetchAmphibians(ctx)
}

// RepositoryFunc adapts a function to Repository.
type RepositoryFunc func(ctx context.Context) ([]amphibian.Amphibian, error)

// GetAmphibians implements Repository.
func (f RepositoryFunc) GetAmphibians(ctx context.Context) ([]amphibian.Amphibian, error) {
	return f(ctx)
}
