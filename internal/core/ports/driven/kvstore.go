package driven

// KVStore is a single-map string key-value store.
type KVStore interface {
	// Put stores value under key, replacing any previous value.
	Put(key, value string)

	// Get returns the value for key.
	Get(key string) (string, bool)

	// Keys returns all keys in sorted order.
	Keys() []string
}
