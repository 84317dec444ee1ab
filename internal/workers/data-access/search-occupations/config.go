// internal/workers/data-access/search-occupations/config.go
package searchoccupations

import "time"

type Config struct {
	Timeout     time.Duration
	IndexName   string
	DefaultSize int
	MaxSize     int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     5 * time.Second,
		IndexName:   "occupations",
		DefaultSize: 10,
		MaxSize:     100,
	}
}
