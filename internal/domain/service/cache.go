package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"time"
)

// Cache stores JSON-encoded values by key.
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// DeletePrefix drops every key under prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// QueryCacheKey derives a stable key from unordered query parameters. Values
// are escaped so that separators inside a value cannot alias another set.
func QueryCacheKey(prefix string, params map[string]string) string {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}

	// Encode sorts by key.
	hash := md5.Sum([]byte(values.Encode()))

	return prefix + ":" + hex.EncodeToString(hash[:])
}
