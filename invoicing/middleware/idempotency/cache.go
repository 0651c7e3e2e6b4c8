package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

// Cluster backs the idempotency keyspace
var Cluster = cache.NewCluster("invoicing-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Cache stores one entry per (resource, key) pair. Entries expire after a
// day; a retry later than that is treated as a new request.
var Cache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
