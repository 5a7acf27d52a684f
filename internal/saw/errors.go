package saw

import (
	"errors"
	"fmt"
)

// Configuration error kinds. A ConfigurationError always unwraps to one of these.
var (
	ErrCountMismatch  = errors.New("criteria count mismatch")
	ErrWeightSum      = errors.New("weights must sum to 1.0")
	ErrNegativeWeight = errors.New("negative weight")
	ErrUnknownType    = errors.New("unknown criterion type")
	ErrDuplicateName  = errors.New("duplicate criterion name")
	ErrNotConfigured  = errors.New("criteria not configured")
)

// Validation error kinds for malformed decision matrices.
var (
	ErrEmptyMatrix  = errors.New("decision matrix is empty")
	ErrRaggedMatrix = errors.New("decision matrix rows differ in length")
	ErrNonFinite    = errors.New("decision matrix contains NaN or Inf")
)

// ConfigurationError reports criteria that cannot be used for a calculation.
// It is fatal: no calculation runs once one is returned.
type ConfigurationError struct {
	Kind   error
	Detail string
	// Sum is the computed weight total, populated for ErrWeightSum.
	Sum float64
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return "saw: " + e.Kind.Error()
	}
	return fmt.Sprintf("saw: %s: %s", e.Kind, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return e.Kind }

// ValidationError reports a decision matrix with the wrong shape or values.
type ValidationError struct {
	Kind   error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return "saw: " + e.Kind.Error()
	}
	return fmt.Sprintf("saw: %s: %s", e.Kind, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func configErrorf(kind error, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func validationErrorf(kind error, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
