// internal/workers/readiness/compute-ai-readiness/config.go
package computeaireadiness

import (
	"time"

	"ai-readiness-workers/internal/scoring"
)

type Config struct {
	Timeout    time.Duration
	Parameters scoring.Parameters
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    15 * time.Second,
		Parameters: scoring.DefaultParameters(),
	}
}
