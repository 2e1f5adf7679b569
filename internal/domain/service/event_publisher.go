package service

import (
	"context"

	"estatex/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent announces a moderation decision
	PublishListingEvent(ctx context.Context, event *entity.ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
