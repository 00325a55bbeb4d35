// Package sourcedotenv loads configuration from .env files.
//
// Keys are normalized like environment variables: lowercase, with double
// underscores as level separators (DATABASE__HOST → database.host, single
// underscores preserved).
//
// Example:
//
//	source := sourcedotenv.New(".env", sourcedotenv.Options{TryParsing: true})
//	cfg, err := halyard.NewLoader().WithSource(source).Load(ctx)
package sourcedotenv
