// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is a broker or administrator account.
type User struct {
	ID           uuid.UUID     `json:"id"`
	FullName     string        `json:"fullName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	ReraNumber   string        `json:"reraNumber"`
	State        string        `json:"state"`
	City         string        `json:"city"`
	PasswordHash string        `json:"-"`
	Role         Role          `json:"role"`
	Status       AccountStatus `json:"status"`
	Location     Coordinates   `json:"location"`
	// SubscriptionID is the back-reference to the broker's single subscription.
	SubscriptionID *uuid.UUID `json:"subscriptionId,omitempty"`
	// Subscription is populated only by queries that join it.
	Subscription *Subscription `json:"subscription,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Summary returns the owner projection embedded in listings and subscriptions.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

// MarshalJSON adds the derived isAdmin flag the web client relies on.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User

	return json.Marshal(struct {
		plain
		IsAdmin bool `json:"isAdmin"`
	}{
		plain:   plain(u),
		IsAdmin: u.Role == RoleAdmin,
	})
}

// UserSummary is the populated owner/broker reference.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
}
