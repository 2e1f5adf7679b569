package service

import (
	"context"

	"estatex/internal/domain/entity"
)

// RegionDirectory looks up states and cities from an external directory.
type RegionDirectory interface {
	States(ctx context.Context) ([]entity.State, error)
	Cities(ctx context.Context, stateCode string) ([]entity.City, error)
}

// BannerProvider fetches promotional banner image URLs for a location.
type BannerProvider interface {
	Banners(ctx context.Context, location string) ([]string, error)
}
