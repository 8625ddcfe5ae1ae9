// Package cache implements the time-boxed cache used by the wardrobe engine.
//
// Each entry is stored as a small JSON blob {value, fetchedAt[, ttl]} in a Store.
// Stores exist for process memory, a GORM table (wardrobe_cache_entries) and MinIO
// objects. Expiry is decided by an injected Clock so tests can move time forward.
//
// # Usage
//
//	store, err := cache.OpenStore(cfg.CacheBackend, cache.Backends{DB: db})
//	c := cache.New(store, 24*time.Hour, cache.SystemClock, logger)
//	build, err := cache.GetOrLoad(ctx, c, "version", loadVersion)
package cache
