package conform

import (
	"encoding/json"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want Kind
	}{
		{name: "nil", v: nil, want: NullKind},
		{name: "bool", v: true, want: BoolKind},
		{name: "int", v: 3, want: NumberKind},
		{name: "float64", v: 3.5, want: NumberKind},
		{name: "json number", v: json.Number("7"), want: NumberKind},
		{name: "string", v: "x", want: StringKind},
		{name: "slice", v: []any{}, want: ArrayKind},
		{name: "map", v: map[string]any{}, want: ObjectKind},
		{name: "schema", v: Schema{}, want: ObjectKind},
		{name: "typed slice", v: []int{1}, want: InvalidKind},
		{name: "struct", v: struct{}{}, want: InvalidKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.v); got != tt.want {
				t.Errorf("KindOf(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestKindTextRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != k {
			t.Errorf("round trip %v -> %s -> %v", k, d, back)
		}
	}
}
