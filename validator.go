package conform

// Validator is the single runtime capability every schema node compiles to.
// Validate returns the normalized value, or an error on one of the two
// failure channels: a *ValidationError for wrong-content values, or a
// *KindError for wrong-kind values (see errors.go).
type Validator interface {
	Validate(v any) (any, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(v any) (any, error)

func (f ValidatorFunc) Validate(v any) (any, error) { return f(v) }

type nullable struct {
	inner Validator
}

// Nullable wraps a validator so that a nil input is accepted as-is.
// Everything else is delegated to the inner validator.
func Nullable(inner Validator) Validator {
	return &nullable{inner: inner}
}

func (n *nullable) Validate(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.inner.Validate(v)
}
