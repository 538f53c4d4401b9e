// internal/workers/viability/analyze-viability/config.go
package analyzeviability

import "time"

type Config struct {
	Timeout time.Duration
	// InteriorLevel is the finish tier used when pricing the investment to recoup.
	InteriorLevel string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       15 * time.Second,
		InteriorLevel: "standard",
	}
}
