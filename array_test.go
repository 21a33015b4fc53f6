package conform

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArrayValidate(t *testing.T) {
	tests := []struct {
		name    string
		inner   Validator
		input   any
		want    any
		wantErr string
	}{
		{
			name:  "empty array",
			inner: Int(),
			input: []any{},
			want:  []any{},
		},
		{
			name:  "elements normalized in order",
			inner: TrimmedString(),
			input: []any{" a ", "b ", " c"},
			want:  []any{"a", "b", "c"},
		},
		{
			name:    "non-array input",
			inner:   Int(),
			input:   map[string]any{},
			wantErr: "expected array, got object",
		},
		{
			name:    "null input",
			inner:   Int(),
			input:   nil,
			wantErr: "expected array, got null",
		},
		{
			name:    "structural element failure names the index",
			inner:   Int(),
			input:   []any{float64(1), float64(2), true},
			wantErr: "error in element 2: expected number, got boolean",
		},
		{
			name:    "reported element failure names the index",
			inner:   NonEmptyString(),
			input:   []any{"a", ""},
			wantErr: "error during validation of element 1: empty string is not accepted",
		},
		{
			name:  "nested arrays",
			inner: Array(Int()),
			input: []any{[]any{float64(1)}, []any{}},
			want:  []any{[]any{int64(1)}, []any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Array(tt.inner).Validate(tt.input)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("Validate() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrayShortCircuits(t *testing.T) {
	calls := 0
	counting := ValidatorFunc(func(v any) (any, error) {
		calls++
		if v == nil {
			return nil, reportf("nope")
		}
		return v, nil
	})
	_, err := Array(counting).Validate([]any{"a", nil, "b"})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 2 {
		t.Errorf("inner validator called %d times, want 2", calls)
	}
}

func TestArrayChannelPreserved(t *testing.T) {
	_, err := Array(Int()).Validate([]any{"x"})
	var kerr *KindError
	if !errors.As(err, &kerr) {
		t.Errorf("element kind failure = %T (%v), want *KindError", err, err)
	}
}
