package resilience

import (
	"errors"
	"time"
)

// CircuitBreakerConfig guards the play-by-play and roster sources. Errors in
// Ignore mean the source answered, e.g. a season with no published file, and
// never count toward FailureThreshold.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
	Ignore           []error
}

// DefaultSourceCircuitConfig is tuned for season-sized loads. Decoding a full
// play-by-play file takes seconds, so a few failures are enough to open and a
// single trial load decides whether the source is back.
func DefaultSourceCircuitConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultSourceCircuitConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

func (cfg CircuitBreakerConfig) isFailure(err error) bool {
	for _, target := range cfg.Ignore {
		if errors.Is(err, target) {
			return false
		}
	}
	return true
}
