package conform

import "github.com/conformdev/conform/debug"

// resolve turns one concrete schema value into exactly one validator.
//
// Dispatch order is load-bearing: a Validator implementation is accepted
// before the generic map cases, since nothing stops a validator from also
// being map-shaped.
func resolve(v any, reg *Registry) (Validator, error) {
	if debug.Resolve() {
		debug.Logf("resolve schema value %v\n", v)
	}
	switch x := v.(type) {
	case string:
		return reg.Shorthand(x)
	case []any:
		if len(x) != 1 {
			return nil, schemaErrf("array in concrete schema had length %d, not equal to 1", len(x))
		}
		inner, err := resolve(x[0], reg)
		if err != nil {
			return nil, err
		}
		return Array(inner), nil
	case Validator:
		return x, nil
	case Schema:
		return Object(x, WithRegistry(reg))
	case map[string]any:
		return Object(Schema(x), WithRegistry(reg))
	}
	return nil, schemaErrf("illegal value in concrete schema: not a type string or validator")
}
