package driving

// KVService is the key-value surface used by the interactive shell.
type KVService interface {
	// Put stores value under key.
	Put(key, value string) error

	// Get retrieves the value for key, or domain.ErrNotFound.
	Get(key string) (string, error)

	// List returns all keys in sorted order.
	List() []string
}
