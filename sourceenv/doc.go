// Package sourceenv loads configuration from environment variables.
//
// Prefix filtering: with prefix "app", APP_PORT → port (the prefix and its
// trailing group separator are stripped). Separator rewriting: with separator
// "_", REDIS_PASSWORD → redis.password.
//
// Example:
//
//	source := sourceenv.WithPrefix("app").Separator("__").TryParsing(true)
//	cfg, err := halyard.NewLoader().WithSource(source).Load(ctx)
package sourceenv
