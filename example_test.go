package conform_test

import (
	"fmt"

	"github.com/conformdev/conform"
)

func ExampleObject() {
	v := conform.MustObject(conform.Schema{
		"name":   "trimmed non-empty string",
		"age":    "int",
		"email?": "string",
		"tags":   []any{"string"},
	})

	out, err := v.Validate(map[string]any{
		"name": "  Ada Lovelace  ",
		"age":  float64(36),
		"tags": []any{"math", "computing"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := out.(map[string]any)
	fmt.Println(m["name"], m["age"])
	// Output: Ada Lovelace 36
}

func ExampleObject_errors() {
	v := conform.MustObject(conform.Schema{"count": "int"})

	_, err := v.Validate(map[string]any{"count": "three"})
	fmt.Println(err)

	_, err = v.Validate(map[string]any{})
	fmt.Println(err)
	// Output:
	// error in parameter "count": expected number, got string
	// required parameter count not provided
}
