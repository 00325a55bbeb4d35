package halyard

// Map holds normalized configuration keys mapped to typed values.
// Keys are lowercase dot-separated paths (e.g., "database.host").
type Map map[string]Value

// Lookup returns the value stored under key and whether it was present.
func (m Map) Lookup(key string) (Value, bool) {
	v, ok := m[key]
	return v, ok
}

// Bool returns the boolean stored under key. The second result is false if
// the key is absent or holds a different kind.
func (m Map) Bool(key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	return v.Bool()
}

// Int returns the integer stored under key. The second result is false if
// the key is absent or holds a different kind.
func (m Map) Int(key string) (int64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return v.Int()
}

// Float returns the float stored under key. The second result is false if
// the key is absent or holds a different kind.
func (m Map) Float(key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// Str returns the value stored under key rendered as a string.
// The second result is false only if the key is absent.
func (m Map) Str(key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	return v.AsString(), true
}
