package config

// BatchConfig holds settings for running many queries at once.
type BatchConfig struct {
	// Workers is the number of worker goroutines (0 = runtime.NumCPU())
	Workers int

	// BufferSize is the work and result channel capacity
	BufferSize int

	// UseCache memoizes results of repeated queries
	UseCache bool

	// CacheCapacity bounds the cache (0 = unlimited)
	CacheCapacity int
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		BufferSize: 64,
		UseCache:   true,
	}
}
