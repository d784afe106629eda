package record

// Config holds recursion settings shared by the transforms.
type Config struct {
	// MaxDepth bounds how many nested containers a transform may enter,
	// counting the top-level container as 1. Exceeding it returns
	// ErrDepthExceeded.
	// Default: 0 (unbounded; cyclic input overflows the stack)
	MaxDepth int
}

// DefaultConfig returns the unbounded configuration.
func DefaultConfig() Config {
	return Config{}
}

// SafeConfig returns a configuration bounded at depth.
func SafeConfig(depth int) Config {
	return Config{MaxDepth: depth}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
}

// exceeds reports whether entering a container at depth breaks the limit.
func (c Config) exceeds(depth int) bool {
	return c.MaxDepth > 0 && depth > c.MaxDepth
}
