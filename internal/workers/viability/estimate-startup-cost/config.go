// internal/workers/viability/estimate-startup-cost/config.go
package estimatestartupcost

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
