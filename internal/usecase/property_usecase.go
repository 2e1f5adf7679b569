package usecase

import (
	"context"

	"estatex/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePropertyInput is a listing submission. Any status sent by the client is ignored.
type CreatePropertyInput struct {
	Category          entity.Category        `json:"category"`
	Type              entity.TransactionType `json:"type" validate:"required"`
	BuildingOrSociety string                 `json:"buildingOrSociety"`
	RoadOrLocation    string                 `json:"roadOrLocation"`
	Station           string                 `json:"station"`
	SubLocation       string                 `json:"subLocation"`
	PropertyType      string                 `json:"propertyType"`
	IsCosmo           bool                   `json:"isCosmo"`
	Images            []string               `json:"images"`
	Amenities         []string               `json:"amenities"`
	Location          entity.Coordinates     `json:"location"`

	entity.PropertyAttributes
}

// UpdatePropertyInput is a partial update. Nil fields keep their stored value.
// Status is honored for admins only.
type UpdatePropertyInput struct {
	Category          *entity.Category         `json:"category,omitempty"`
	Type              *entity.TransactionType  `json:"type,omitempty"`
	Status            *entity.ModerationStatus `json:"status,omitempty"`
	BuildingOrSociety *string                  `json:"buildingOrSociety,omitempty"`
	RoadOrLocation    *string                  `json:"roadOrLocation,omitempty"`
	Station           *string                  `json:"station,omitempty"`
	SubLocation       *string                  `json:"subLocation,omitempty"`
	PropertyType      *string                  `json:"propertyType,omitempty"`
	IsCosmo           *bool                    `json:"isCosmo,omitempty"`
	Images            *[]string                `json:"images,omitempty"`
	Amenities         *[]string                `json:"amenities,omitempty"`
	Location          *entity.Coordinates      `json:"location,omitempty"`

	entity.PropertyAttributesPatch
}

// ReviewInput is an admin moderation decision.
type ReviewInput struct {
	Status  entity.ModerationStatus `json:"status"`
	Remarks string                  `json:"remarks"`
}

// NearbyInput selects approved listings around a point. A zero radius uses the default.
type NearbyInput struct {
	Center entity.Coordinates
	Radius float64
}

// PropertyUsecase defines listing management and moderation.
type PropertyUsecase interface {
	Create(ctx context.Context, actor *entity.User, input *CreatePropertyInput) (*entity.Property, error)

	// List returns approved listings matching the filter, newest first.
	List(ctx context.Context, filter entity.PropertyFilter) ([]*entity.Property, error)

	ListMine(ctx context.Context, actor *entity.User) ([]*entity.Property, error)
	ListPending(ctx context.Context) ([]*entity.Property, error)
	Get(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.Property, error)
	Update(ctx context.Context, actor *entity.User, id uuid.UUID, input *UpdatePropertyInput) (*entity.Property, error)
	Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error
	Review(ctx context.Context, reviewer *entity.User, id uuid.UUID, input *ReviewInput) (*entity.Property, error)
	Nearby(ctx context.Context, input *NearbyInput) ([]*entity.Property, error)
}
