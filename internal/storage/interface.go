package storage

// Provider is a persistent key-value facility holding one serialized blob per
// slot. Both backends are synchronous; a Set that returns nil has been
// durably written.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Slots
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error

	// Utils
	GetConfigPath() string
}
