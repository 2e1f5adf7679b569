package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of listing categories.
type Category string

const (
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
	CategoryShops       Category = "shops"
	CategoryBungalow    Category = "bungalow"
	CategoryRawHouse    Category = "rawHouse"
	CategoryVilla       Category = "villa"
	CategoryPentHouse   Category = "pentHouse"
	CategoryPlot        Category = "plot"
)

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryShops, CategoryBungalow,
		CategoryRawHouse, CategoryVilla, CategoryPentHouse, CategoryPlot:
		return true
	default:
		return false
	}
}

// ModerationStatus tracks a listing through admin review.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// IsValid checks if the ModerationStatus is a valid value.
func (s ModerationStatus) IsValid() bool {
	switch s {
	case ModerationPending, ModerationApproved, ModerationRejected:
		return true
	default:
		return false
	}
}

// IsReviewOutcome reports whether the status can be set by a review.
func (s ModerationStatus) IsReviewOutcome() bool {
	return s == ModerationApproved || s == ModerationRejected
}

// Review records the admin decision on a listing.
type Review struct {
	ReviewedBy uuid.UUID
	ReviewedAt time.Time
	Remarks    string
}

// Property is a broker listing. Type-specific attributes live in Details.
type Property struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Owner             *UserSummary
	Category          Category
	Status            ModerationStatus
	BuildingOrSociety string
	RoadOrLocation    string
	Station           string
	SubLocation       string
	PropertyType      string
	IsCosmo           bool
	Images            []string
	Amenities         []string
	Location          Coordinates
	Details           PropertyDetails
	Review            *Review
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Type returns the transaction type carried by the details variant.
func (p *Property) Type() TransactionType {
	if p.Details == nil {
		return ""
	}

	return p.Details.TransactionType()
}

// Validate checks the common required fields. Details are validated when built.
func (p *Property) Validate() error {
	verr := &ValidationError{}
	if !p.Category.IsValid() {
		verr.add("category must be one of residential, commercial, shops, bungalow, rawHouse, villa, pentHouse, plot")
	}
	if p.Details == nil {
		verr.add("type must be one of new, resale, rental")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"buildingOrSociety", p.BuildingOrSociety},
		{"roadOrLocation", p.RoadOrLocation},
		{"station", p.Station},
		{"propertyType", p.PropertyType},
	} {
		if strings.TrimSpace(field.value) == "" {
			verr.add(field.name + " is required")
		}
	}
	if !p.Location.IsValid() {
		verr.add("location coordinates are out of range")
	}

	return verr.orNil()
}

// CanBeModifiedBy reports whether the user may update or delete the listing.
func (p *Property) CanBeModifiedBy(user *User) bool {
	if user == nil {
		return false
	}

	return user.IsAdmin() || user.ID == p.OwnerID
}

// IsVisibleTo reports whether the user may read the listing by id.
func (p *Property) IsVisibleTo(user *User) bool {
	return p.Status == ModerationApproved || p.CanBeModifiedBy(user)
}

// ApplyReview sets the review outcome. Only approved and rejected are accepted.
func (p *Property) ApplyReview(reviewer uuid.UUID, status ModerationStatus, remarks string, at time.Time) error {
	if !status.IsReviewOutcome() {
		return &ValidationError{Problems: []string{"status must be approved or rejected"}}
	}

	p.Status = status
	p.Review = &Review{
		ReviewedBy: reviewer,
		ReviewedAt: at,
		Remarks:    remarks,
	}

	return nil
}

// PropertyFilter is a conjunction of listing criteria. Zero fields are ignored.
type PropertyFilter struct {
	Category     Category
	Type         TransactionType
	PropertyType string
	Station      string
	SubLocation  string
	IsCosmo      *bool
	MinBudget    *float64
	MaxBudget    *float64
	Status       ModerationStatus
	OwnerID      *uuid.UUID
}

// Params returns the non-empty criteria as strings, used to derive cache keys.
func (f PropertyFilter) Params() map[string]string {
	params := make(map[string]string)
	set := func(key, value string) {
		if value != "" {
			params[key] = value
		}
	}

	set("category", string(f.Category))
	set("type", string(f.Type))
	set("propertyType", f.PropertyType)
	set("station", f.Station)
	set("subLocation", f.SubLocation)
	set("status", string(f.Status))
	if f.IsCosmo != nil {
		set("isCosmo", strconv.FormatBool(*f.IsCosmo))
	}
	if f.MinBudget != nil {
		set("minBudget", strconv.FormatFloat(*f.MinBudget, 'f', -1, 64))
	}
	if f.MaxBudget != nil {
		set("maxBudget", strconv.FormatFloat(*f.MaxBudget, 'f', -1, 64))
	}
	if f.OwnerID != nil {
		set("owner", f.OwnerID.String())
	}

	return params
}

// ValidationError lists every problem found with an input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) add(problem string) {
	e.Problems = append(e.Problems, problem)
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}

	return e
}
