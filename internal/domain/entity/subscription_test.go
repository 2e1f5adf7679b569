package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var andheri = Coordinates{Latitude: 19.1197, Longitude: 72.8468}

func TestSubscription_IsActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *Subscription
		want bool
	}{
		{
			name: "active paid and unexpired",
			sub:  &Subscription{Status: SubscriptionActive, PaymentStatus: PaymentCompleted, EndDate: now.Add(time.Hour)},
			want: true,
		},
		{
			name: "expired yesterday",
			sub:  &Subscription{Status: SubscriptionActive, PaymentStatus: PaymentCompleted, EndDate: now.Add(-24 * time.Hour)},
		},
		{
			name: "payment pending",
			sub:  &Subscription{Status: SubscriptionActive, PaymentStatus: PaymentPending, EndDate: now.Add(time.Hour)},
		},
		{
			name: "deactivated by admin",
			sub:  &Subscription{Status: SubscriptionInactive, PaymentStatus: PaymentCompleted, EndDate: now.Add(time.Hour)},
		},
		{
			name: "missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sub.IsActive(now))
		})
	}
}

func TestSubscription_Covers(t *testing.T) {
	sub := &Subscription{
		Locations: []CoverageLocation{{Name: "Andheri", Center: andheri, Radius: 5000, Price: 999}},
	}

	// Jogeshwari is roughly 2.5 km north of Andheri station.
	assert.True(t, sub.Covers(Coordinates{Latitude: 19.1361, Longitude: 72.8486}))
	// Thane is well over 5 km away.
	assert.False(t, sub.Covers(Coordinates{Latitude: 19.2183, Longitude: 72.9781}))
	assert.False(t, (&Subscription{}).Covers(andheri))
}

func TestSubscription_ReplaceLocationsAndPayment(t *testing.T) {
	start := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	sub := &Subscription{Status: SubscriptionActive, PaymentStatus: PaymentCompleted}

	sub.ReplaceLocations([]CoverageLocation{
		{Name: "Andheri", Center: andheri, Radius: 5000, Price: 999},
		{Name: "Bandra", Center: Coordinates{Latitude: 19.0544, Longitude: 72.8402}, Radius: 5000, Price: 999},
	}, start, 30*24*time.Hour)

	assert.Equal(t, 1998.0, sub.TotalPrice)
	assert.Equal(t, SubscriptionPending, sub.Status)
	assert.Equal(t, PaymentPending, sub.PaymentStatus)
	assert.Equal(t, start.AddDate(0, 0, 30), sub.EndDate)

	sub.RecordPayment(PaymentRecord{Amount: 1998, Date: start, Status: PaymentFailed, TransactionID: "pi_1"})
	assert.Equal(t, SubscriptionPending, sub.Status)
	assert.Equal(t, PaymentFailed, sub.PaymentStatus)

	sub.RecordPayment(PaymentRecord{Amount: 1998, Date: start, Status: PaymentCompleted, TransactionID: "pi_2"})
	assert.Equal(t, SubscriptionActive, sub.Status)
	assert.Equal(t, PaymentCompleted, sub.PaymentStatus)
	assert.Len(t, sub.PaymentHistory, 2)
	assert.True(t, sub.IsActive(start.Add(time.Hour)))
}
