package conform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/conformdev/conform/debug"
)

// Schema is a concrete schema: a mapping from parameter names to concrete
// schema values. A value may be a shorthand token string, a Validator, a
// single-element []any wrapping another value (array-of), or a nested
// Schema (or plain map[string]any). A trailing "?" on a parameter name
// marks the parameter optional; it is stripped before matching input.
type Schema map[string]any

type config struct {
	nullable     bool
	optionalKeys bool
	parseStrings bool
	registry     *Registry
}

// Option configures an Object validator.
type Option func(*config)

// WithNullable lets the object itself be null.
func WithNullable() Option {
	return func(c *config) { c.nullable = true }
}

// WithOptionalKeys treats parameters absent from the input as present with
// value null instead of failing with "required parameter not provided".
func WithOptionalKeys() Option {
	return func(c *config) { c.optionalKeys = true }
}

// WithParseStrings attempts to JSON-decode string input before structural
// validation.
func WithParseStrings() Option {
	return func(c *config) { c.parseStrings = true }
}

// WithRegistry resolves shorthand tokens against the given registry rather
// than DefaultRegistry. The registry is inherited by nested schemas.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.registry = r }
}

type field struct {
	name      string
	optional  bool
	validator Validator
}

// ObjectValidator validates a whole candidate value against a concrete
// schema. The validator tree is resolved once, at construction, so
// schema-authoring mistakes surface from Object rather than from the first
// Validate call. A constructed ObjectValidator is immutable and safe for
// concurrent use.
type ObjectValidator struct {
	cfg    config
	fields []field
}

// Object compiles a concrete schema into an ObjectValidator.
func Object(s Schema, opts ...Option) (*ObjectValidator, error) {
	cfg := config{registry: DefaultRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}
	ov := &ObjectValidator{cfg: cfg}

	seen := make(map[string]bool, len(s))
	for declared, value := range s {
		name, optional := strings.CutSuffix(declared, "?")
		if name == "" {
			return nil, schemaErrf("empty parameter name in concrete schema")
		}
		if seen[name] {
			return nil, schemaErrf("duplicate parameter name %q in concrete schema", name)
		}
		seen[name] = true

		v, err := resolve(value, cfg.registry)
		if err != nil {
			return nil, inParameterSchema(name, err)
		}
		ov.fields = append(ov.fields, field{name: name, optional: optional, validator: v})
	}
	// Go maps are unordered; validation is key-major and short-circuiting,
	// so fix a deterministic order.
	sort.Slice(ov.fields, func(i, j int) bool {
		return ov.fields[i].name < ov.fields[j].name
	})
	return ov, nil
}

// MustObject is Object, panicking on schema-authoring errors. Intended for
// schema literals built at program start.
func MustObject(s Schema, opts ...Option) *ObjectValidator {
	ov, err := Object(s, opts...)
	if err != nil {
		panic(err)
	}
	return ov
}

// Validate checks an input value against the schema, returning a freshly
// built map of normalized values keyed by the stripped parameter names.
// The input is never mutated.
func (ov *ObjectValidator) Validate(v any) (any, error) {
	if ov.cfg.parseStrings {
		if s, ok := v.(string); ok {
			decoded, err := decodeObjectString(s)
			if err != nil {
				return nil, err
			}
			v = decoded
		}
	}
	if v == nil {
		if ov.cfg.nullable {
			return nil, nil
		}
		return nil, kindErr("object", v)
	}
	m, ok := asObject(v)
	if !ok {
		return nil, kindErr("object", v)
	}
	if debug.Validate() {
		debug.Logf("validating object with %d declared parameters against %v\n",
			len(ov.fields), v)
	}

	out := make(map[string]any, len(ov.fields))
	for i := range ov.fields {
		f := &ov.fields[i]
		val, provided := m[f.name]
		if !provided {
			if f.optional {
				continue
			}
			if !ov.cfg.optionalKeys {
				return nil, reportf("required parameter %s not provided", f.name)
			}
			val = nil
		}
		// A provided null flows through: nullability is judged by the
		// resolved validator, not short-circuited here.
		norm, err := f.validator.Validate(val)
		if err != nil {
			return nil, inParameter(f.name, err)
		}
		out[f.name] = norm
	}
	return out, nil
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Schema:
		return m, true
	}
	return nil, false
}

// decodeObjectString decodes a single complete JSON text. Decode failure and
// trailing input are reported; a well-formed value of the wrong kind is left
// to the caller's kind check.
func decodeObjectString(s string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, reportf("string value not a serialized JSON object")
	}
	var rest json.RawMessage
	if err := dec.Decode(&rest); err != io.EOF {
		return nil, reportf("string value not a serialized JSON object")
	}
	return decoded, nil
}

// inParameterSchema decorates schema-authoring errors from nested values
// with the offending parameter name.
func inParameterSchema(key string, err error) error {
	return &SchemaError{Msg: fmt.Sprintf("in parameter %q: %s", key, err)}
}
