// internal/workers/opportunity/rank-occupations/config.go
package rankoccupations

import (
	"time"

	"ai-readiness-workers/internal/scoring"
)

type Config struct {
	Timeout    time.Duration
	Parameters scoring.Parameters
	// DefaultLimit caps the returned rankings when the job sets no limit.
	DefaultLimit int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      20 * time.Second,
		Parameters:   scoring.DefaultParameters(),
		DefaultLimit: 10,
	}
}
