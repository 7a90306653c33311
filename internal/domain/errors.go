package domain

import "fmt"

// SchemaError indicates malformed input: a missing column, a row with the
// wrong arity, an unparseable numeric field, or a categorical value outside
// its fixed vocabulary. Fatal to the current run.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type SchemaError struct {
	Column string
	Value  string
	Row    int // 1-based data row, 0 when the error is not row-specific
	cause  error
}

func (e *SchemaError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("schema error: column %q row %d: invalid value %q", e.Column, e.Row, e.Value)
	}
	return fmt.Sprintf("schema error: column %q: %s", e.Column, e.Value)
}

func (e *SchemaError) Unwrap() error { return e.cause }

// NewSchemaError creates a SchemaError wrapping an optional cause
func NewSchemaError(column, value string, row int, cause error) *SchemaError {
	return &SchemaError{Column: column, Value: value, Row: row, cause: cause}
}

// ConfigurationError indicates an invalid configuration combination, such as
// an encoding whose qubit requirement exceeds the simulator budget or an
// amplitude-encoding input that is not L2-normalized. Fatal, never retried.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// NewConfigurationError creates a ConfigurationError
func NewConfigurationError(field string, value any, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

// FitError indicates degenerate training data or solver non-convergence.
// Fatal to the current run; never silently skipped.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FitError struct {
	Model  string
	Reason string
	cause  error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("fit error: model %q: %s", e.Model, e.Reason)
}

func (e *FitError) Unwrap() error { return e.cause }

// NewFitError creates a FitError wrapping an optional cause
func NewFitError(model, reason string, cause error) *FitError {
	return &FitError{Model: model, Reason: reason, cause: cause}
}
