package configs

import "time"

// Duplication configures the pacing of ad-group duplication tasks. The
// platform throttles duplicate calls aggressively, so a generous delay
// between consecutive copies keeps tasks below the rate limit.
type Duplication struct {
	// Delay is the pause between consecutive duplicate calls within a task.
	Delay time.Duration `env:"DELAY" envDefault:"6s"`
}
