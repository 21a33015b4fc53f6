package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/conformdev/conform"
)

func TestParse(t *testing.T) {
	doc := `{
		"$optionalKeys": true,
		"id": "uuid",
		"count": "int?",
		"tags": ["trimmed non-empty string"],
		"meta?": {"$nullable": true, "rev": "int"},
		"port": {"$expr": "value > 0 && value < 65536"}
	}`
	v, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := v.Validate(map[string]any{
		"id":   "6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
		"tags": []any{" a ", "b"},
		"meta": nil,
		"port": float64(80),
	})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	want := map[string]any{
		"id":    "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"count": nil,
		"tags":  []any{"a", "b"},
		"meta":  nil,
		"port":  float64(80),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}

	if _, err := v.Validate(map[string]any{
		"id":   "nope",
		"tags": []any{},
		"port": float64(80),
	}); err == nil {
		t.Error("bad uuid accepted")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{`},
		{name: "trailing data", doc: `{"a": "int"} {"b": "int"}`},
		{name: "not an object", doc: `[1, 2]`},
		{name: "marker not boolean", doc: `{"$nullable": "yes"}`},
		{name: "two-element array", doc: `{"a": ["int", "int"]}`},
		{name: "unknown token", doc: `{"a": "str"}`},
		{name: "number as schema value", doc: `{"a": 3}`},
		{name: "expr not alone", doc: `{"a": {"$expr": "value > 0", "b": "int"}}`},
		{name: "expr not a string", doc: `{"a": {"$expr": 3}}`},
		{name: "bad expression", doc: `{"a": {"$expr": "value >"}}`},
		{name: "top-level expr", doc: `{"$expr": "value > 0"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Errorf("Parse(%s) expected error", tt.doc)
			}
		})
	}
}

func TestParseStringsMarker(t *testing.T) {
	v, err := Parse([]byte(`{"$parseStrings": true, "a": "int"}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := v.Validate(`{"a": 5}`)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if diff := cmp.Diff(map[string]any{"a": int64(5)}, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestParserRegistry(t *testing.T) {
	r := conform.NewRegistry()
	if err := r.Register("money", conform.TrimmedNonEmptyString()); err != nil {
		t.Fatal(err)
	}
	p := &Parser{Registry: r}

	v, err := p.Parse([]byte(`{"nested": {"price": "money[]"}}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := v.Validate(map[string]any{
		"nested": map[string]any{"price": []any{"9.99"}},
	}); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(`{"a": "boolean"}`), 0644); err != nil {
		t.Fatal(err)
	}
	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := v.Validate(map[string]any{"a": true}); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load() of missing file succeeded")
	}
}
