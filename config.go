package mincache

type Config struct {
	// required: Name of the cache instance
	Name string

	// InitialSize preallocates the record buffer, in bytes.
	// The buffer still grows past it on demand, 0 means no preallocation.
	InitialSize int64

	// StrictKeys makes every read compare the key bytes stored in the record
	// with the requested key. A mismatch means the index and the buffer are
	// out of sync and panics.
	// Default is false: the index is trusted to point at the right record.
	StrictKeys bool

	// Custom timer
	CustomTimer Timer
}

func DefaultConfig(name string) Config {
	return Config{
		Name:        name,
		CustomTimer: defaultTimer{},
	}
}
