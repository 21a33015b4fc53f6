package conform

import "github.com/google/uuid"

type uuidValidator struct{}

// UUID accepts RFC 4122 UUID strings and normalizes them to the canonical
// lowercase hyphenated form.
func UUID() Validator { return uuidValidator{} }

func (uuidValidator) Validate(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, kindErr("string", v)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return nil, reportf("string %q is not a valid uuid", s)
	}
	return u.String(), nil
}
