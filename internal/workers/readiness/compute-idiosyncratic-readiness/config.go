// internal/workers/readiness/compute-idiosyncratic-readiness/config.go
package computeidiosyncraticreadiness

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
