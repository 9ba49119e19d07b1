package scheduler

// Config holds the engine knobs. The retry budget is not correctness
// critical; raising it only improves placement odds on congested grids.
type Config struct {
	// MaxAttempts bounds the randomized search per session instance.
	MaxAttempts int
	// Seed feeds the candidate generator. Zero derives a seed from the
	// clock; any other value reproduces a run exactly.
	Seed int64
}

// NewDefaultConfig returns the stock engine configuration.
func NewDefaultConfig() Config {
	return Config{
		MaxAttempts: 1000,
		Seed:        0,
	}
}
