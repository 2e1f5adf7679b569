package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CoverageLocationJSON is one element of the subscriptions.locations jsonb column.
type CoverageLocationJSON struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
	Price     float64 `json:"price"`
}

// PaymentRecordJSON is one element of the subscriptions.payment_history jsonb column.
type PaymentRecordJSON struct {
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transactionId"`
}

// SubscriptionModel mirrors the 'subscriptions' table. One row per broker.
type SubscriptionModel struct {
	ID             uuid.UUID                                 `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BrokerID       uuid.UUID                                 `gorm:"type:uuid;not null;uniqueIndex"`
	Locations      datatypes.JSONSlice[CoverageLocationJSON] `gorm:"type:jsonb;not null"`
	TotalPrice     float64                                   `gorm:"type:decimal(12,2);not null"`
	Status         string                                    `gorm:"type:varchar(16);not null;default:pending;index"`
	PaymentStatus  string                                    `gorm:"type:varchar(16);not null;default:pending"`
	StartDate      time.Time                                 `gorm:"not null"`
	EndDate        time.Time                                 `gorm:"not null"`
	PaymentHistory datatypes.JSONSlice[PaymentRecordJSON]    `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Broker *UserModel `gorm:"foreignKey:BrokerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// BeforeSave recomputes the total from the stored locations on every persist.
func (m *SubscriptionModel) BeforeSave(_ *gorm.DB) error {
	var total float64
	for _, l := range m.Locations {
		total += l.Price
	}
	m.TotalPrice = total
	if m.PaymentHistory == nil {
		m.PaymentHistory = datatypes.JSONSlice[PaymentRecordJSON]{}
	}

	return nil
}
