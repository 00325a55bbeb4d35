package halyard

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is a typed configuration value tagged with the origin it was collected
// from. Exactly one of the bool/int/float/string variants is populated; the
// zero Value is an empty string with no origin.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	origin string
}

// BoolValue creates a boolean Value.
func BoolValue(v bool, origin string) Value {
	return Value{kind: KindBool, b: v, origin: origin}
}

// IntValue creates a 64-bit integer Value.
func IntValue(v int64, origin string) Value {
	return Value{kind: KindInt, i: v, origin: origin}
}

// FloatValue creates a 64-bit float Value.
func FloatValue(v float64, origin string) Value {
	return Value{kind: KindFloat, f: v, origin: origin}
}

// StringValue creates a string Value.
func StringValue(v string, origin string) Value {
	return Value{kind: KindString, s: v, origin: origin}
}

// FromAny converts a parsed scalar into a Value. Sources use this to wrap
// values produced by format parsers (YAML yields int, JSON float64, TOML
// int64). Unrecognized types are stringified.
func FromAny(v any, origin string) Value {
	switch x := v.(type) {
	case bool:
		return BoolValue(x, origin)
	case int:
		return IntValue(int64(x), origin)
	case int32:
		return IntValue(int64(x), origin)
	case int64:
		return IntValue(x, origin)
	case uint:
		return IntValue(int64(x), origin)
	case uint32:
		return IntValue(int64(x), origin)
	case uint64:
		if x <= math.MaxInt64 {
			return IntValue(int64(x), origin)
		}
		return FloatValue(float64(x), origin)
	case float32:
		return FloatValue(float64(x), origin)
	case float64:
		return FloatValue(x, origin)
	case string:
		return StringValue(x, origin)
	default:
		return StringValue(fmt.Sprint(x), origin)
	}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Origin returns the provenance tag identifying where the value came from
// (e.g., "the environment", "file:config.yaml").
func (v Value) Origin() string {
	return v.origin
}

// Bool returns the boolean variant. The second result is false if the value
// holds a different kind.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Int returns the integer variant. The second result is false if the value
// holds a different kind.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns the float variant. The second result is false if the value
// holds a different kind.
func (v Value) Float() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// Raw returns the underlying Go value (bool, int64, float64, or string).
func (v Value) Raw() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}

// AsString renders the value as a string regardless of kind.
func (v Value) AsString() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}
