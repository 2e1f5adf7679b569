package usecase

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// BrokerDetail is a broker with every listing they own.
type BrokerDetail struct {
	Broker     *entity.User       `json:"broker"`
	Properties []*entity.Property `json:"properties"`
}

// SetBrokerStatusInput activates or deactivates a broker account.
type SetBrokerStatusInput struct {
	Status entity.AccountStatus `json:"status"`
}

// AdminUsecase defines the administrator dashboard and broker management.
type AdminUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
	ListBrokers(ctx context.Context) ([]*entity.User, error)
	GetBroker(ctx context.Context, id uuid.UUID) (*BrokerDetail, error)
	SetBrokerStatus(ctx context.Context, id uuid.UUID, input *SetBrokerStatusInput) (*entity.User, error)
	SubscriptionAnalytics(ctx context.Context) ([]entity.SubscriptionAnalytics, error)
	PropertyAnalytics(ctx context.Context) ([]entity.PropertyAnalytics, error)
}
