package config

import (
	"fmt"
	"math"
	"time"
)

// Default bounds applied when no flag, environment variable or config file sets them.
const (
	DefaultMaxDistance = 100
	DefaultMinDistance = 1
	DefaultMaxDelay    = 30
	DefaultMinDelay    = 5
)

// Largest magnitudes a bound may take. Distances must fit a 32-bit pointer
// offset and delays must fit a time.Duration once converted from seconds.
const (
	DistanceLimit = math.MaxInt32
	DelayLimit    = math.MaxInt64 / int64(time.Second)
)

// Config holds the bounds and switches of a wander session.
// Distances are pixels, delays are seconds.
type Config struct {
	MaxDistance int  `mapstructure:"max-distance"`
	MinDistance int  `mapstructure:"min-distance"`
	MaxDelay    int  `mapstructure:"max-delay"`
	MinDelay    int  `mapstructure:"min-delay"`
	Debug       bool `mapstructure:"debug"`
	Verbosity   int  `mapstructure:"verbose"`

	// Duration bounds the whole session, e.g. "2h30m" or "90" (minutes). Empty runs until interrupted.
	Duration string `mapstructure:"duration"`
	// Until stops the session at a wall-clock time, e.g. "17:30" or "5:30PM".
	Until   string `mapstructure:"until"`
	DryRun  bool   `mapstructure:"dry-run"`
	TUI     bool   `mapstructure:"tui"`
	Mover   string `mapstructure:"mover"`
	LogFile string `mapstructure:"log-file"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		MaxDistance: DefaultMaxDistance,
		MinDistance: DefaultMinDistance,
		MaxDelay:    DefaultMaxDelay,
		MinDelay:    DefaultMinDelay,
	}
}

// DistanceBoundsValid reports whether MinDistance does not exceed MaxDistance.
func (c Config) DistanceBoundsValid() bool {
	return c.MinDistance <= c.MaxDistance
}

// DelayBoundsValid reports whether MinDelay does not exceed MaxDelay.
func (c Config) DelayBoundsValid() bool {
	return c.MinDelay <= c.MaxDelay
}

// DistanceInRange reports whether both distance bounds are within ±DistanceLimit.
func (c Config) DistanceInRange() bool {
	return within(c.MinDistance, DistanceLimit) && within(c.MaxDistance, DistanceLimit)
}

// DelayInRange reports whether both delay bounds are within ±DelayLimit.
func (c Config) DelayInRange() bool {
	return within(c.MinDelay, DelayLimit) && within(c.MaxDelay, DelayLimit)
}

// Validate rejects bounds too large to move or sleep by. Ordering of the bounds
// is left to the step that uses them.
func (c Config) Validate() error {
	if !c.DistanceInRange() {
		return fmt.Errorf("distance bounds must be within ±%d pixels, got min-distance=%d max-distance=%d",
			DistanceLimit, c.MinDistance, c.MaxDistance)
	}
	if !c.DelayInRange() {
		return fmt.Errorf("delay bounds must be within ±%d seconds, got min-delay=%d max-delay=%d",
			DelayLimit, c.MinDelay, c.MaxDelay)
	}
	return nil
}

func within(v int, limit int64) bool {
	return int64(v) >= -limit && int64(v) <= limit
}
