// internal/workers/opportunity/compute-systematic-opportunity/config.go
package computesystematicopportunity

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
		Timeout:    10 * time.Second,
		Parameters: scoring.DefaultParameters(),
	}
}
