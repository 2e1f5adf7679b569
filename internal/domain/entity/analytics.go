package entity

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	TotalBrokers        int64 `json:"totalBrokers"`
	TotalProperties     int64 `json:"totalProperties"`
	PendingProperties   int64 `json:"pendingProperties"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
}

// SubscriptionAnalytics groups subscriptions by status.
type SubscriptionAnalytics struct {
	Status       SubscriptionStatus `json:"status"`
	Count        int64              `json:"count"`
	TotalRevenue float64            `json:"totalRevenue"`
}

// PropertyAnalytics groups listings by category, transaction type and moderation status.
type PropertyAnalytics struct {
	Category Category         `json:"category"`
	Type     TransactionType  `json:"type"`
	Status   ModerationStatus `json:"status"`
	Count    int64            `json:"count"`
}
