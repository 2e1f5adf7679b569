package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingEvent is published when a listing is reviewed.
type ListingEvent struct {
	RequestID  string           `json:"requestId,omitempty"`
	PropertyID uuid.UUID        `json:"propertyId"`
	OwnerID    uuid.UUID        `json:"ownerId"`
	Status     ModerationStatus `json:"status"`
	ReviewedBy uuid.UUID        `json:"reviewedBy"`
	Remarks    string           `json:"remarks,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}
