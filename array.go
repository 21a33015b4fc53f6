package conform

import "github.com/conformdev/conform/debug"

type arrayValidator struct {
	inner Validator
}

// Array applies an inner validator to every element of an array input,
// producing a new slice of the normalized elements in the same order. The
// first failing element short-circuits. Nullability of the array itself is
// the wrapping constructor's concern; see Nullable.
func Array(inner Validator) Validator {
	return &arrayValidator{inner: inner}
}

func (a *arrayValidator) Validate(v any) (any, error) {
	vs, ok := v.([]any)
	if !ok {
		return nil, kindErr("array", v)
	}
	if debug.Validate() {
		debug.Logf("validating array of %d elements\n", len(vs))
	}
	out := make([]any, len(vs))
	for i, elem := range vs {
		norm, err := a.inner.Validate(elem)
		if err != nil {
			return nil, inElement(i, err)
		}
		out[i] = norm
	}
	return out, nil
}
