// internal/workers/pathway/compare-pathways/config.go
package comparepathways

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
		Timeout:    20 * time.Second,
		Parameters: scoring.DefaultParameters(),
	}
}
