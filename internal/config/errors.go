package config

import (
	"fmt"
	"strings"
)

// ParseError reports a raw environment or flag value that could not be
// coerced into its field's declared type.
type ParseError struct {
	// Field is the external name of the offending field (the environment
	// variable alias when known, the struct field name otherwise).
	Field string
	// Value is the raw value that failed to parse.
	Value string
	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: cannot parse %s from %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a violated group-local invariant.
type ValidationError struct {
	// Group is the name of the setting group whose invariant failed.
	Group string
	// Rule is the human-readable description of the violated rule.
	Rule string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: invalid %s settings: %s", e.Group, e.Rule)
}

// AggregationError collects every child-group failure of a single
// construction attempt so that all of them surface together.
type AggregationError struct {
	Errs []error
}

func (e *AggregationError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap supports errors.Is and errors.As over the collected child errors.
func (e *AggregationError) Unwrap() []error {
	return e.Errs
}
