package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"estatex/config"
	deliverycontext "estatex/internal/delivery/context"
	"estatex/internal/domain/constants"
	"estatex/internal/domain/entity"
	domainerrors "estatex/internal/domain/errors"
	"estatex/internal/domain/repository"
	"estatex/internal/domain/service"
	"estatex/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	propertyRepo   repository.PropertyRepository
	regions        service.RegionDirectory
	banners        service.BannerProvider
	cache          service.Cache
	bannerTTL      time.Duration
	bannerFallback []string
	logger         *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	PropertyRepo repository.PropertyRepository
	Regions      service.RegionDirectory
	Banners      service.BannerProvider
	Cache        service.Cache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	srv := &locationService{
		propertyRepo: params.PropertyRepo,
		regions:      params.Regions,
		banners:      params.Banners,
		cache:        params.Cache,
		logger:       params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Banners != nil {
		srv.bannerTTL = cfg.Banners.CacheTTL
		srv.bannerFallback = slices.Clone(cfg.Banners.Fallback)
	}

	return srv
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *locationService) States(ctx context.Context) ([]entity.State, error) {
	states, err := srv.regions.States(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch states")
	}

	return states, nil
}

func (srv *locationService) Cities(ctx context.Context, stateCode string) ([]entity.City, error) {
	stateCode = strings.TrimSpace(stateCode)
	if stateCode == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("State code is required")
	}

	cities, err := srv.regions.Cities(ctx, stateCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch cities")
	}

	return cities, nil
}

func (srv *locationService) Stations(ctx context.Context) ([]string, error) {
	stations, err := srv.propertyRepo.Stations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stations")
	}

	return stations, nil
}

func (srv *locationService) SubLocations(ctx context.Context, station string) ([]string, error) {
	subLocations, err := srv.propertyRepo.SubLocations(ctx, station)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sub-locations")
	}

	return subLocations, nil
}

func (srv *locationService) Search(ctx context.Context, query string) (*entity.LocationSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Search query is required")
	}

	result, err := srv.propertyRepo.SearchLocations(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search locations")
	}

	return result, nil
}

// Banners serves cached banner URLs, falling back to the configured images
// whenever the banner service fails or has nothing for the location.
func (srv *locationService) Banners(ctx context.Context, location string) ([]string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Location parameter is required")
	}

	key := service.QueryCacheKey(constants.CachePrefixBanners, map[string]string{"location": strings.ToLower(location)})

	var cached []string
	found, err := srv.cache.Get(ctx, key, &cached)
	if err != nil {
		srv.log(ctx).Warn("Banner cache read failed", slog.Any("error", err))
	}
	if found && len(cached) > 0 {
		return cached, nil
	}

	banners, err := srv.banners.Banners(ctx, location)
	if err != nil {
		srv.log(ctx).Warn("Banner service unavailable, serving fallback",
			slog.String("location", location),
			slog.Any("error", err),
		)

		return srv.fallback(), nil
	}
	if len(banners) == 0 {
		return srv.fallback(), nil
	}

	if srv.bannerTTL > 0 {
		if err := srv.cache.Set(ctx, key, banners, srv.bannerTTL); err != nil {
			srv.log(ctx).Warn("Banner cache write failed", slog.Any("error", err))
		}
	}

	return banners, nil
}

func (srv *locationService) fallback() []string {
	return slices.Clone(srv.bannerFallback)
}
