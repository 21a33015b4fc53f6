package conform

type boolValidator struct{}

// Bool accepts boolean values.
func Bool() Validator { return boolValidator{} }

func (boolValidator) Validate(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, kindErr("boolean", v)
	}
	return b, nil
}
