// Package literal provides best-effort typing of configuration literals.
package literal

import (
	"strconv"
	"strings"
)

// Parse converts a raw string into the most specific matching type.
// Attempts run in priority order: boolean, 64-bit signed integer, 64-bit
// float. Boolean literals are matched case-insensitively against true/false;
// integer is tried before float so "5" keeps its integral type. A value that
// parses as none of these is returned unchanged as a string, so Parse cannot
// fail.
func Parse(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	return raw
}
