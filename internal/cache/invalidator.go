// Package cache signals query-cache staleness after mutations. The key shapes
// below are the contract between the services and whatever caches dispatch
// data; marking a key stale drops the cached entry so the next read refetches.
package cache

import (
	"context"
	"strconv"
)

// Invalidator marks cached query results stale. A link mutation always marks
// both endpoints and both list views together: the relationship is visible
// from either side.
type Invalidator interface {
	MarkStale(ctx context.Context, keys ...string) error
}

func DispatchOrderKey(id uint) string {
	return "dispatch:order:" + strconv.FormatUint(uint64(id), 10)
}

func DispatchOrderListKey() string {
	return "dispatch:orders"
}

func ProjectKey(id uint) string {
	return "dispatch:project:" + strconv.FormatUint(uint64(id), 10)
}

func DocumentKey(id uint) string {
	return "dispatch:document:" + strconv.FormatUint(uint64(id), 10)
}
