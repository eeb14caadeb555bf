package guide

import (
	"context"
	"errors"
	"fmt"

	"Railcalc/internal/catalog"
)

// ErrCatalog wraps failures of the catalog provider.
var ErrCatalog = errors.New("catalog unavailable")

// Service ties the engine to a catalog source. The catalog is fetched once
// per call before any arithmetic runs.
type Service struct {
	Engine  *Engine
	Catalog catalog.Provider
}

func (s *Service) Run(ctx context.Context, in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	items, err := s.Items(ctx)
	if err != nil {
		return Result{}, err
	}
	return s.Engine.Calculate(in, items)
}

func (s *Service) Items(ctx context.Context) ([]catalog.Item, error) {
	items, err := s.Catalog.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalog, err)
	}
	return items, nil
}
