package storage

// Provider is the synchronous key-value persistence contract the tracker
// writes through. Each key holds the JSON-serialized form of one
// collection or scalar (see constants.StorageKeys).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get unmarshals the value stored under key into v. It returns
	// (false, nil) when the key is absent and an error when the stored
	// value cannot be decoded.
	Get(key string, v any) (bool, error)
	// Set stores the JSON-serialized form of v under key.
	Set(key string, v any) error

	// Utils
	GetConfigPath() string
}
