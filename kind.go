package conform

import (
	"encoding/json"
	"fmt"
)

// Kind classifies an untyped value into one of the JSON value kinds.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
	InvalidKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:    "null",
		BoolKind:    "boolean",
		NumberKind:  "number",
		StringKind:  "string",
		ArrayKind:   "array",
		ObjectKind:  "object",
		InvalidKind: "invalid",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"null":    NullKind,
		"boolean": BoolKind,
		"number":  NumberKind,
		"string":  StringKind,
		"array":   ArrayKind,
		"object":  ObjectKind,
		"invalid": InvalidKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		ArrayKind,
		ObjectKind,
	}
}

// KindOf reports the kind of an untyped value. Values outside the JSON
// shape (channels, funcs, structs, ...) report InvalidKind.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return NullKind
	case bool:
		return BoolKind
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return NumberKind
	case string:
		return StringKind
	case []any:
		return ArrayKind
	case map[string]any, Schema:
		return ObjectKind
	}
	return InvalidKind
}
