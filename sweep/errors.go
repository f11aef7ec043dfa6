package sweep

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("sweep: invalid configuration")

	// ErrMissingStep indicates a network step without parameters.
	ErrMissingStep = errors.New("sweep: missing step parameters")

	// ErrAlreadyRunning indicates Run1D/Run2D was called on a busy Engine.
	ErrAlreadyRunning = errors.New("sweep: engine is already running")
)

// ConfigError names the configuration field that aborted a run.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sweep: invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}

	return fmt.Sprintf("sweep: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap exposes ErrInvalidConfig and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}

	return []error{ErrInvalidConfig}
}

func configErr(field, reason string, err error) error {
	return &ConfigError{Field: field, Reason: reason, Err: err}
}
