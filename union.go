package conform

type unionValidator struct {
	alts []Validator
}

// OneOf accepts a value if any of the alternatives accepts it, returning
// the normalized value of the first that does. A structural mismatch in an
// alternative counts as a non-match rather than failing the whole union.
func OneOf(alts ...Validator) Validator {
	return &unionValidator{alts: alts}
}

func (u *unionValidator) Validate(v any) (any, error) {
	for _, alt := range u.alts {
		norm, err := alt.Validate(v)
		if err == nil {
			return norm, nil
		}
	}
	return nil, reportf("value did not match any of %d alternatives", len(u.alts))
}
