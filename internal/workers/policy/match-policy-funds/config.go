// internal/workers/policy/match-policy-funds/config.go
package matchpolicyfunds

import "time"

type Config struct {
	Timeout time.Duration
	// Count is the number of listings requested from the portal.
	Count int
	// MaxResults caps the matched funds returned.
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:    15 * time.Second,
		Count:      30,
		MaxResults: 10,
	}
}
