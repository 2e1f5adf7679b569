package repository

import (
	"context"
	"errors"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when a listing is not found.
var ErrPropertyNotFound = errors.New("property not found")

// NearbyQuery selects listings around a point.
type NearbyQuery struct {
	Center entity.Coordinates
	// Radius in meters
	Radius float64
	Status entity.ModerationStatus
}

// PropertyRepository defines persistence for broker listings.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error

	// FindByID returns the listing with its owner summary populated.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// Find returns listings matching every set criterion, newest first, owner populated.
	Find(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, error)

	// FindNearby returns listings within the radius, nearest first.
	FindNearby(ctx context.Context, query NearbyQuery) ([]*entity.Property, error)

	// Update replaces the mutable fields of an existing listing.
	Update(ctx context.Context, property *entity.Property) error

	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts listings, optionally restricted to a status ("" for all).
	Count(ctx context.Context, status entity.ModerationStatus) (int64, error)

	// Analytics groups listings by category, type and status.
	Analytics(ctx context.Context) ([]entity.PropertyAnalytics, error)

	// Stations returns the distinct stations of all listings.
	Stations(ctx context.Context) ([]string, error)

	// SubLocations returns the distinct non-empty sub-locations of a station.
	SubLocations(ctx context.Context, station string) ([]string, error)

	// SearchLocations matches stations and sub-locations case-insensitively.
	SearchLocations(ctx context.Context, query string) (*entity.LocationSearchResult, error)
}
