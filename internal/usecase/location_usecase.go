package usecase

import (
	"context"

	"estatex/internal/domain/entity"
)

// LocationUsecase serves reference data: regions, stations and banners.
type LocationUsecase interface {
	States(ctx context.Context) ([]entity.State, error)
	Cities(ctx context.Context, stateCode string) ([]entity.City, error)
	Stations(ctx context.Context) ([]string, error)
	SubLocations(ctx context.Context, station string) ([]string, error)
	Search(ctx context.Context, query string) (*entity.LocationSearchResult, error)

	// Banners never fails; upstream problems yield the configured fallback images.
	Banners(ctx context.Context, location string) ([]string, error)
}
