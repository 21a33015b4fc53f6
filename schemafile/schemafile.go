// Package schemafile loads concrete schemas from JSON documents.
//
// The document form mirrors the in-code Schema literal: shorthand tokens
// as strings, single-element arrays for array wrapping, nested objects for
// nested schemas. Reserved "$"-prefixed keys carry what the Go API passes
// as options:
//
//	{
//	  "$nullable": true,
//	  "$optionalKeys": false,
//	  "$parseStrings": false,
//	  "id": "uuid",
//	  "tags": ["trimmed non-empty string"],
//	  "meta?": {"$nullable": true, "rev": "int"},
//	  "port": {"$expr": "value > 0 && value < 65536"}
//	}
//
// An object whose only key is "$expr" compiles to an expression validator
// rather than a nested schema.
package schemafile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/conformdev/conform"
)

const (
	nullableKey     = "$nullable"
	optionalKeysKey = "$optionalKeys"
	parseStringsKey = "$parseStrings"
	exprKey         = "$expr"
)

// Parser builds conform validators from schema documents.
type Parser struct {
	// Registry resolves shorthand tokens; nil means conform.DefaultRegistry.
	Registry *conform.Registry
}

// Parse compiles a JSON schema document with the default registry.
func Parse(data []byte) (*conform.ObjectValidator, error) {
	return (&Parser{}).Parse(data)
}

// Load reads and compiles a schema file.
func Load(path string) (*conform.ObjectValidator, error) {
	return (&Parser{}).Load(path)
}

func (p *Parser) registry() *conform.Registry {
	if p.Registry != nil {
		return p.Registry
	}
	return conform.DefaultRegistry
}

// Load reads and compiles a schema file.
func (p *Parser) Load(path string) (*conform.ObjectValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, perr := p.Parse(data)
	if perr != nil {
		return nil, fmt.Errorf("schema %s: %w", path, perr)
	}
	return v, nil
}

// Parse compiles a JSON schema document.
func (p *Parser) Parse(data []byte) (*conform.ObjectValidator, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema document is not valid JSON: %w", err)
	}
	var rest json.RawMessage
	if err := dec.Decode(&rest); err != io.EOF {
		return nil, fmt.Errorf("schema document has trailing data after the JSON object")
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema document must be a JSON object")
	}
	s, opts, err := p.object(m)
	if err != nil {
		return nil, err
	}
	opts = append(opts, conform.WithRegistry(p.registry()))
	return conform.Object(s, opts...)
}

// object splits reserved keys off a schema object and converts the rest.
func (p *Parser) object(m map[string]any) (conform.Schema, []conform.Option, error) {
	s := make(conform.Schema, len(m))
	var opts []conform.Option
	for key, raw := range m {
		switch key {
		case nullableKey, optionalKeysKey, parseStringsKey:
			b, ok := raw.(bool)
			if !ok {
				return nil, nil, fmt.Errorf("%s must be a boolean", key)
			}
			if !b {
				continue
			}
			switch key {
			case nullableKey:
				opts = append(opts, conform.WithNullable())
			case optionalKeysKey:
				opts = append(opts, conform.WithOptionalKeys())
			case parseStringsKey:
				opts = append(opts, conform.WithParseStrings())
			}
		case exprKey:
			return nil, nil, fmt.Errorf("%s must be the only key of its object", exprKey)
		default:
			v, err := p.value(key, raw)
			if err != nil {
				return nil, nil, err
			}
			s[key] = v
		}
	}
	return s, opts, nil
}

// value converts one schema document value into a concrete schema value.
func (p *Parser) value(key string, raw any) (any, error) {
	switch x := raw.(type) {
	case string:
		return x, nil
	case []any:
		if len(x) != 1 {
			return nil, fmt.Errorf("array under %q must have exactly one element, got %d", key, len(x))
		}
		elem, err := p.value(key, x[0])
		if err != nil {
			return nil, err
		}
		return []any{elem}, nil
	case map[string]any:
		if code, ok := x[exprKey]; ok {
			if len(x) != 1 {
				return nil, fmt.Errorf("%s under %q must be the only key of its object", exprKey, key)
			}
			s, ok := code.(string)
			if !ok {
				return nil, fmt.Errorf("%s under %q must be a string", exprKey, key)
			}
			return conform.Expr(s)
		}
		s, opts, err := p.object(x)
		if err != nil {
			return nil, err
		}
		if len(opts) == 0 {
			// Plain nested schema: leave resolution (and registry
			// inheritance) to conform.
			return s, nil
		}
		opts = append(opts, conform.WithRegistry(p.registry()))
		return conform.Object(s, opts...)
	}
	return nil, fmt.Errorf("illegal schema value under %q: must be a token string, array, or object", key)
}
