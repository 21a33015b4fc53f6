// Package conform validates untyped values against concrete schemas.
//
// # Overview
//
// A concrete schema declares the expected shape of a JSON-shaped value
// (the result of decoding JSON into any, or any equivalent tree of maps,
// slices, strings, numbers, booleans and nils). The schema itself is a
// plain nested structure: shorthand token strings, Validator instances,
// single-element arrays, and nested schemas.
//
//	v, err := conform.Object(conform.Schema{
//	    "id":     "uuid",
//	    "count":  "int",
//	    "labels": []any{"trimmed non-empty string"},
//	    "note?":  "string?",
//	})
//	out, err := v.Validate(input)
//
// Object compiles the schema into a validator tree once; Validate then
// walks input values against that tree, producing a normalized output map
// or an error.
//
// # Shorthand tokens
//
// Shorthand strings name a base validator plus modifiers:
//
//   - bases: string, non-empty string, trimmed string,
//     trimmed non-empty string, uuid, int, integer, float, boolean
//   - "?" directly after the base makes the element nullable
//   - "[]" wraps in an array
//   - a trailing "?" after "[]" makes the array itself nullable
//
// "int?[]" is an array whose elements are each null or an integer;
// "int[]?" is null or an array of non-null integers.
//
// # Failure channels
//
// Two error channels are kept distinct. A *ValidationError means the
// value had the right kind but the wrong content (an empty string, a
// missing required parameter); callers recover from these. A *KindError
// means the value had the wrong kind entirely (a string where a number
// was declared); it carries the expected and actual kinds and is wrapped
// with the offending parameter path at each nesting level. Schema
// authoring mistakes are *SchemaError values returned by Object itself.
//
// Validators hold no mutable state after construction and are safe for
// concurrent use.
package conform
