package ports

import "context"

// MenuCache caches serialized restaurant menus between reads. Entries expire
// by TTL; writers invalidate nothing, so a stale menu can be served for at
// most one TTL window after a change.
type MenuCache interface {
	// Get returns the cached payload for a restaurant and whether it was present.
	Get(ctx context.Context, restaurantID int64) (string, bool, error)

	// Set stores the payload for a restaurant.
	Set(ctx context.Context, restaurantID int64, payload string) error
}
