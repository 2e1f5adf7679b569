// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the lifecycle state set by payment and admins.
type SubscriptionStatus string

const (
	SubscriptionPending  SubscriptionStatus = "pending"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// IsValid checks if the SubscriptionStatus is a valid value.
func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionPending, SubscriptionActive, SubscriptionInactive:
		return true
	default:
		return false
	}
}

// IsAdminSettable reports whether an admin may set the status directly.
func (s SubscriptionStatus) IsAdminSettable() bool {
	return s == SubscriptionActive || s == SubscriptionInactive
}

// PaymentStatus is the outcome of the most recent payment attempt.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// CoverageLocation is one paid location of a subscription.
type CoverageLocation struct {
	Name   string      `json:"name"`
	Center Coordinates `json:"coordinates"`
	// Radius in meters
	Radius float64 `json:"radius"`
	Price  float64 `json:"price"`
}

// Covers reports whether point lies within Radius of the center.
func (l CoverageLocation) Covers(point Coordinates) bool {
	return l.Center.DistanceTo(point) <= l.Radius
}

// PaymentRecord is an append-only entry of the payment history.
type PaymentRecord struct {
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId"`
}

// Subscription grants a broker access to listings in the covered locations.
// A broker has at most one.
type Subscription struct {
	ID             uuid.UUID          `json:"id"`
	BrokerID       uuid.UUID          `json:"brokerId"`
	Broker         *UserSummary       `json:"broker,omitempty"`
	Locations      []CoverageLocation `json:"locations"`
	TotalPrice     float64            `json:"totalPrice"`
	Status         SubscriptionStatus `json:"status"`
	PaymentStatus  PaymentStatus      `json:"paymentStatus"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	PaymentHistory []PaymentRecord    `json:"paymentHistory"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// CalculateTotalPrice sums the per-location prices.
func (s *Subscription) CalculateTotalPrice() float64 {
	var total float64
	for _, l := range s.Locations {
		total += l.Price
	}

	return total
}

// RecalculateTotalPrice keeps TotalPrice consistent with Locations.
func (s *Subscription) RecalculateTotalPrice() {
	s.TotalPrice = s.CalculateTotalPrice()
}

// IsActive requires active status, completed payment and an unexpired window.
func (s *Subscription) IsActive(now time.Time) bool {
	if s == nil {
		return false
	}

	return s.Status == SubscriptionActive &&
		s.PaymentStatus == PaymentCompleted &&
		now.Before(s.EndDate)
}

// Covers reports whether any location covers point.
func (s *Subscription) Covers(point Coordinates) bool {
	for _, l := range s.Locations {
		if l.Covers(point) {
			return true
		}
	}

	return false
}

// ReplaceLocations resets the subscription to an unpaid state over a new window.
func (s *Subscription) ReplaceLocations(locations []CoverageLocation, start time.Time, validity time.Duration) {
	s.Locations = locations
	s.RecalculateTotalPrice()
	s.StartDate = start
	s.EndDate = start.Add(validity)
	s.Status = SubscriptionPending
	s.PaymentStatus = PaymentPending
}

// RecordPayment appends the outcome and activates on success.
func (s *Subscription) RecordPayment(record PaymentRecord) {
	s.PaymentHistory = append(s.PaymentHistory, record)
	s.PaymentStatus = record.Status
	if record.Status == PaymentCompleted {
		s.Status = SubscriptionActive
	}
}
