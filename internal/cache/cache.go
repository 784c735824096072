package cache

// EvictCallback is called when an entry is evicted from the cache.
// Not all providers support eviction callbacks (the redis provider relies
// on server-side expiry).
type EvictCallback func(key string, value []byte)

// Logger receives error reports from cache operations that cannot surface
// an error to the caller (Get/Set are fire-and-forget by contract).
type Logger interface {
	Error(msg string, err error)
}

// Cache is a bounded key-value store for encoded image bytes, keyed by
// source URL. All implementations are safe for concurrent use: image loads
// for every visible cell hit this store at the same time.
type Cache interface {
	// Get retrieves a value by key. Returns the value and true if found,
	// or nil and false if not.
	Get(key string) ([]byte, bool)

	// Set stores a value with the given key. If the key already exists,
	// it is overwritten.
	Set(key string, value []byte)

	// Contains checks whether a key exists without affecting LRU ordering.
	Contains(key string) bool

	// Len returns the number of entries currently in the cache. For the
	// redis provider this reflects the key count under the cache prefix.
	Len() int

	// Close releases any resources held by the cache (e.g., network
	// connections). For the in-memory provider this is a no-op.
	Close() error
}
