package normalize

import "strings"

// ToLowerDotPath normalizes a configuration key to a lowercase dot-separated path.
// Every occurrence of separator is replaced with a dot; an empty separator
// leaves the key unsegmented.
// Examples:
//   - ToLowerDotPath("REDIS_PASSWORD", "_") → "redis.password"
//   - ToLowerDotPath("DATABASE__HOST", "__") → "database.host"
//   - ToLowerDotPath("DB_MAX_CONNECTIONS", "__") → "db_max_connections"
//   - ToLowerDotPath("PLAIN", "") → "plain"
func ToLowerDotPath(key, separator string) string {
	key = strings.ToLower(key)
	if separator == "" {
		return key
	}
	return strings.ReplaceAll(key, separator, ".")
}
