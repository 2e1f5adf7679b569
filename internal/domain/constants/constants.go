// Package constants holds provider names and cache prefixes shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment providers
const (
	PaymentProviderSimulated = "simulated"
	PaymentProviderStripe    = "stripe"
)

// Cache key prefixes
const (
	CachePrefixListings = "listings"
	CachePrefixBanners  = "banners"
)

// SimulatedTransactionPrefix prefixes transaction ids issued without a real gateway.
const SimulatedTransactionPrefix = "TRANS_"
