package info

// Config holds configuration options for source inspection
type Config struct {
	IncludeUnexported bool // keep unexported declarations in the tree
	SkipTests         bool // ignore _test.go files
}

// DefaultConfig returns the configuration used when none is given: unexported declarations kept, tests skipped
func DefaultConfig() *Config {
	return &Config{
		IncludeUnexported: true,
		SkipTests:         true,
	}
}
