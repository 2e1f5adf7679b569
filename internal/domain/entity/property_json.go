package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// propertyWire is the flat JSON form: type-specific fields sit next to "type".
type propertyWire struct {
	ID                uuid.UUID        `json:"id"`
	OwnerID           uuid.UUID        `json:"ownerId"`
	Owner             *UserSummary     `json:"owner,omitempty"`
	Category          Category         `json:"category"`
	Type              TransactionType  `json:"type"`
	Status            ModerationStatus `json:"status"`
	BuildingOrSociety string           `json:"buildingOrSociety"`
	RoadOrLocation    string           `json:"roadOrLocation"`
	Station           string           `json:"station"`
	SubLocation       string           `json:"subLocation,omitempty"`
	PropertyType      string           `json:"propertyType"`
	IsCosmo           bool             `json:"isCosmo"`
	Images            []string         `json:"images"`
	Amenities         []string         `json:"amenities"`
	Location          Coordinates      `json:"location"`
	PropertyAttributes
	ReviewedBy   *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	AdminRemarks string     `json:"adminRemarks,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (p Property) MarshalJSON() ([]byte, error) {
	w := propertyWire{
		ID:                p.ID,
		OwnerID:           p.OwnerID,
		Owner:             p.Owner,
		Category:          p.Category,
		Type:              p.Type(),
		Status:            p.Status,
		BuildingOrSociety: p.BuildingOrSociety,
		RoadOrLocation:    p.RoadOrLocation,
		Station:           p.Station,
		SubLocation:       p.SubLocation,
		PropertyType:      p.PropertyType,
		IsCosmo:           p.IsCosmo,
		Images:            nonNil(p.Images),
		Amenities:         nonNil(p.Amenities),
		Location:          p.Location,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Details != nil {
		w.PropertyAttributes = p.Details.Attributes()
	}
	if p.Review != nil {
		reviewer, at := p.Review.ReviewedBy, p.Review.ReviewedAt
		w.ReviewedBy = &reviewer
		w.ReviewedAt = &at
		w.AdminRemarks = p.Review.Remarks
	}

	return json.Marshal(w)
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var w propertyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*p = Property{
		ID:                w.ID,
		OwnerID:           w.OwnerID,
		Owner:             w.Owner,
		Category:          w.Category,
		Status:            w.Status,
		BuildingOrSociety: w.BuildingOrSociety,
		RoadOrLocation:    w.RoadOrLocation,
		Station:           w.Station,
		SubLocation:       w.SubLocation,
		PropertyType:      w.PropertyType,
		IsCosmo:           w.IsCosmo,
		Images:            w.Images,
		Amenities:         w.Amenities,
		Location:          w.Location,
		Details:           DetailsFromAttributes(w.Type, w.PropertyAttributes),
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
	if w.ReviewedBy != nil && w.ReviewedAt != nil {
		p.Review = &Review{
			ReviewedBy: *w.ReviewedBy,
			ReviewedAt: *w.ReviewedAt,
			Remarks:    w.AdminRemarks,
		}
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
