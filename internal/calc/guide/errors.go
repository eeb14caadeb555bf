package guide

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for requests that break the basic field rules.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration is returned by a matched variant when the
	// geometry it needs is missing.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnhandledConfiguration means no variant matched. Calculate turns it
	// into a result with OK=false.
	ErrUnhandledConfiguration = errors.New("unhandled configuration")
)

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s %s", e.Field, e.Reason) }

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

type ConfigError struct {
	Variant string
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Variant, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

func requirePositive(variant, field string, v float64, when string) error {
	if v > 0 {
		return nil
	}
	reason := "must be > 0"
	if when != "" {
		reason += " " + when
	}
	return &ConfigError{Variant: variant, Field: field, Reason: reason}
}
