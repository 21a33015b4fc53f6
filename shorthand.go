package conform

import (
	"strings"

	"github.com/conformdev/conform/debug"
)

// Shorthand resolves a compact type token against the default registry.
// The grammar is <base>[?][[]][?]: a "?" directly after the base marks the
// element nullable, "[]" wraps the result in an array, and a trailing "?"
// after "[]" marks the array itself nullable. "int?[]?" therefore accepts
// null, or an array whose elements are each null or an integer.
func Shorthand(tok string) (Validator, error) {
	return DefaultRegistry.Shorthand(tok)
}

// Shorthand resolves a token against this registry.
func (r *Registry) Shorthand(tok string) (Validator, error) {
	rest := tok

	// A trailing "?" only counts as array nullability when it follows "]".
	arrayNullable := false
	if strings.HasSuffix(rest, "]?") {
		arrayNullable = true
		rest = strings.TrimSuffix(rest, "?")
	}
	isArray := strings.HasSuffix(rest, "[]")
	if isArray {
		rest = strings.TrimSuffix(rest, "[]")
	}
	elemNullable := strings.HasSuffix(rest, "?")
	if elemNullable {
		rest = strings.TrimSuffix(rest, "?")
	}

	base, ok := r.Lookup(rest)
	if !ok {
		return nil, schemaErrf("unknown type in concrete schema: %q", rest)
	}
	if debug.Resolve() {
		debug.Logf("shorthand %q: base=%q elemNullable=%v array=%v arrayNullable=%v\n",
			tok, rest, elemNullable, isArray, arrayNullable)
	}

	// Wrap order matters for type accuracy: element nullability wraps the
	// base before array wrapping, array nullability wraps after.
	v := base
	if elemNullable {
		v = Nullable(v)
	}
	if isArray {
		v = Array(v)
	}
	if arrayNullable {
		v = Nullable(v)
	}
	return v, nil
}
