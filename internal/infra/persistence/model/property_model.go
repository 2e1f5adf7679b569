package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PropertyModel mirrors the 'properties' table. Type-specific columns are
// nullable and only populated for the matching transaction type.
type PropertyModel struct {
	ID                uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID           uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Category          string                      `gorm:"type:varchar(32);not null;index:idx_properties_category_type_status,priority:1"`
	Type              string                      `gorm:"type:varchar(16);not null;index:idx_properties_category_type_status,priority:2"`
	Status            string                      `gorm:"type:varchar(16);not null;default:pending;index:idx_properties_category_type_status,priority:3"`
	BuildingOrSociety string                      `gorm:"type:varchar(255);not null"`
	RoadOrLocation    string                      `gorm:"type:varchar(255);not null"`
	Station           string                      `gorm:"type:varchar(120);not null;index:idx_properties_station_sub_location,priority:1"`
	SubLocation       string                      `gorm:"type:varchar(120);index:idx_properties_station_sub_location,priority:2"`
	PropertyType      string                      `gorm:"type:varchar(64);not null"`
	IsCosmo           bool                        `gorm:"not null;default:false"`
	Images            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Amenities         datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Latitude          float64                     `gorm:"type:decimal(10,8);not null"`
	Longitude         float64                     `gorm:"type:decimal(11,8);not null"`

	// new
	PossessionDate *time.Time
	TotalPackage   *float64 `gorm:"type:decimal(14,2)"`
	BrochureURL    *string  `gorm:"type:text"`
	VideoURL       *string  `gorm:"type:text"`

	// resale
	ExpectedPrice *float64 `gorm:"type:decimal(14,2)"`
	FloorNo       *string  `gorm:"type:varchar(16)"`
	FlatNo        *string  `gorm:"type:varchar(16)"`
	ContactName   *string  `gorm:"type:varchar(150)"`
	ContactNumber *string  `gorm:"type:varchar(32)"`
	IsDirect      *bool

	// rental
	Rent           *float64 `gorm:"type:decimal(14,2)"`
	Deposit        *float64 `gorm:"type:decimal(14,2)"`
	Furnishing     *string  `gorm:"type:varchar(16)"`
	BuildingNo     *string  `gorm:"type:varchar(32)"`
	TotalFloors    *int
	Wing           *string `gorm:"type:varchar(16)"`
	PropertyAge    *int
	Parking        *string `gorm:"type:varchar(16)"`
	AvailableFrom  *time.Time
	Ownership      *string `gorm:"type:varchar(64)"`
	MasterBedrooms *int

	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	AdminRemarks *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
