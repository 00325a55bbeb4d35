package halyard

import (
	"reflect"
	"testing"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		kind     Kind
		raw      any
		asString string
	}{
		{
			name:     "bool",
			input:    true,
			kind:     KindBool,
			raw:      true,
			asString: "true",
		},
		{
			name:     "int from yaml",
			input:    5432,
			kind:     KindInt,
			raw:      int64(5432),
			asString: "5432",
		},
		{
			name:     "int64 from toml",
			input:    int64(-9),
			kind:     KindInt,
			raw:      int64(-9),
			asString: "-9",
		},
		{
			name:     "float64 from json",
			input:    8080.0,
			kind:     KindFloat,
			raw:      8080.0,
			asString: "8080",
		},
		{
			name:     "decimal float",
			input:    3.14,
			kind:     KindFloat,
			raw:      3.14,
			asString: "3.14",
		},
		{
			name:     "string",
			input:    "hello",
			kind:     KindString,
			raw:      "hello",
			asString: "hello",
		},
		{
			name:     "uint64 within int64 range",
			input:    uint64(7),
			kind:     KindInt,
			raw:      int64(7),
			asString: "7",
		},
		{
			name:     "uint64 above int64 range widens to float",
			input:    uint64(1) << 63,
			kind:     KindFloat,
			raw:      float64(1 << 63),
			asString: "9.223372036854776e+18",
		},
		{
			name:     "unrecognized type is stringified",
			input:    []int{1, 2},
			kind:     KindString,
			raw:      "[1 2]",
			asString: "[1 2]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromAny(tt.input, "test")

			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.kind)
			}
			if !reflect.DeepEqual(v.Raw(), tt.raw) {
				t.Errorf("Raw() = %v (%T), want %v (%T)", v.Raw(), v.Raw(), tt.raw, tt.raw)
			}
			if v.AsString() != tt.asString {
				t.Errorf("AsString() = %q, want %q", v.AsString(), tt.asString)
			}
			if v.Origin() != "test" {
				t.Errorf("Origin() = %q, want %q", v.Origin(), "test")
			}
		})
	}
}

func TestValue_AccessorsRejectOtherKinds(t *testing.T) {
	v := IntValue(42, "test")

	if _, ok := v.Bool(); ok {
		t.Error("Bool() on an integer value should report !ok")
	}
	if _, ok := v.Float(); ok {
		t.Error("Float() on an integer value should report !ok")
	}
	if n, ok := v.Int(); !ok || n != 42 {
		t.Errorf("Int() = %d, %v, want 42, true", n, ok)
	}
}

func TestValue_ZeroValue(t *testing.T) {
	var v Value

	if v.Kind() != KindString {
		t.Errorf("zero Value kind = %v, want %v", v.Kind(), KindString)
	}
	if v.AsString() != "" {
		t.Errorf("zero Value AsString() = %q, want empty", v.AsString())
	}
	if v.Origin() != "" {
		t.Errorf("zero Value Origin() = %q, want empty", v.Origin())
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindString: "string",
		KindBool:   "bool",
		KindInt:    "int",
		KindFloat:  "float",
		Kind(99):   "unknown",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
