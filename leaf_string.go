package conform

import "strings"

type stringValidator struct {
	trim     bool
	nonEmpty bool
}

// String accepts any string, including the empty one.
func String() Validator { return &stringValidator{} }

// NonEmptyString accepts any string except "".
func NonEmptyString() Validator { return &stringValidator{nonEmpty: true} }

// TrimmedString trims surrounding whitespace and accepts the result,
// including "".
func TrimmedString() Validator { return &stringValidator{trim: true} }

// TrimmedNonEmptyString trims surrounding whitespace and rejects strings
// that are empty afterwards.
func TrimmedNonEmptyString() Validator {
	return &stringValidator{trim: true, nonEmpty: true}
}

func (s *stringValidator) Validate(v any) (any, error) {
	sv, ok := v.(string)
	if !ok {
		return nil, kindErr("string", v)
	}
	if s.trim {
		sv = strings.TrimSpace(sv)
	}
	if s.nonEmpty && sv == "" {
		return nil, reportf("empty string is not accepted")
	}
	return sv, nil
}
