package config

import "time"

// SolverConfig holds production plan solver configuration
type SolverConfig struct {
	// Timeout bounds a single solve call
	Timeout time.Duration `mapstructure:"timeout"`
}
