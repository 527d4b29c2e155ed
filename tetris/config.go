package tetris

import "fmt"

// Config holds the fall timing of an Engine, in seconds.
type Config struct {
	// BaseDelay is how long the piece rests on a row before falling.
	BaseDelay float64
	// SoftDropDelay replaces BaseDelay for frames where SoftDrop is held.
	SoftDropDelay float64
}

// DefaultConfig returns the stock timing.
func DefaultConfig() Config {
	return Config{
		BaseDelay:     0.3,
		SoftDropDelay: 0.05,
	}
}

// Validate rejects timings the fall loop cannot work with.
func (c Config) Validate() error {
	if c.BaseDelay <= 0 {
		return fmt.Errorf("base delay must be positive, got %v", c.BaseDelay)
	}
	if c.SoftDropDelay <= 0 {
		return fmt.Errorf("soft drop delay must be positive, got %v", c.SoftDropDelay)
	}
	if c.SoftDropDelay > c.BaseDelay {
		return fmt.Errorf("soft drop delay %v exceeds base delay %v", c.SoftDropDelay, c.BaseDelay)
	}
	return nil
}
