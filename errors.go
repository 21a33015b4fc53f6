package conform

import (
	"errors"
	"fmt"
)

// ValidationError reports that a value has the right kind but the wrong
// content. It is the recoverable failure channel: callers are expected to
// inspect it and carry on.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func reportf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// KindError reports a structural mismatch: the value is the wrong kind
// entirely (an array where an object was declared, a string where a number
// was declared). Nesting levels wrap it with the offending key path, so the
// final message names the full path to the bad field.
type KindError struct {
	Expected string
	Actual   string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
}

func kindErr(expected string, v any) error {
	return &KindError{Expected: expected, Actual: KindOf(v).String()}
}

// SchemaError reports a schema-authoring mistake: an unknown shorthand
// token, a malformed array wrapping, an illegal concrete schema value.
// These surface at Object construction time, not during validation.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return e.Msg }

func schemaErrf(format string, args ...any) error {
	return &SchemaError{Msg: fmt.Sprintf(format, args...)}
}

// inParameter wraps a field-level failure with the enclosing key, keeping
// the two channels distinguishable through errors.As.
func inParameter(key string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("error during validation of parameter %s: %w", key, err)
	}
	return fmt.Errorf("error in parameter %q: %w", key, err)
}

// inElement is the array analogue of inParameter.
func inElement(i int, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("error during validation of element %d: %w", i, err)
	}
	return fmt.Errorf("error in element %d: %w", i, err)
}
