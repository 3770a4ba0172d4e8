package bpe

// Option configures an Encoding at construction time. Modeled on the
// teacher's functional-options constructor (agentstation-tokenizer
// llama3/options.go), generalized from Llama3-specific knobs to the cache
// sizing this package actually needs.
type Option func(*encodingConfig)

type encodingConfig struct {
	cacheSize int
}

func defaultEncodingConfig() encodingConfig {
	return encodingConfig{cacheSize: 8192}
}

// WithCacheSize overrides the number of distinct pre-tokens whose merge
// result is memoized. A size of 0 disables the cache entirely.
func WithCacheSize(size int) Option {
	return func(c *encodingConfig) {
		c.cacheSize = size
	}
}
