package impl

import (
	"log/slog"
	"time"

	"estatex/config"
	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 10,
			TokenTTL:   time.Hour,
		},
		Subscription: &config.SubscriptionConfig{
			PricePerLocation: 999,
			Currency:         "INR",
			ValidityDays:     30,
			DefaultRadius:    5000,
			CoveragePolicy:   config.CoveragePolicyRadius,
		},
		Property: &config.PropertyConfig{
			DefaultCategory: "residential",
			NearbyRadius:    5000,
			ListingTTL:      time.Minute,
		},
		Banners: &config.BannersConfig{
			CacheTTL: time.Hour,
			Fallback: []string{"https://images.example.com/a.jpeg", "https://images.example.com/b.jpeg"},
		},
	}
}

func newBroker() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		FullName: "Asha Mehta",
		Email:    "asha@example.com",
		Phone:    "9820000000",
		Role:     entity.RoleBroker,
		Status:   entity.AccountStatusActive,
		Location: entity.Coordinates{Latitude: 19.076, Longitude: 72.8777},
	}
}

func newAdmin() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		FullName: "Admin",
		Email:    "admin@example.com",
		Role:     entity.RoleAdmin,
		Status:   entity.AccountStatusActive,
	}
}

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
