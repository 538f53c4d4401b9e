// internal/workers/location/resolve-location/config.go
package resolvelocation

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 8 * time.Second,
	}
}
