package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName       string    `gorm:"type:varchar(150);not null"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone          string    `gorm:"type:varchar(32);not null"`
	ReraNumber     string    `gorm:"type:varchar(64);not null"`
	State          string    `gorm:"type:varchar(100);not null"`
	City           string    `gorm:"type:varchar(100);not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(16);not null;default:broker;index"`
	Status         string    `gorm:"type:varchar(16);not null;default:active"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	SubscriptionID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Subscription *SubscriptionModel `gorm:"foreignKey:BrokerID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
