// Package sourcefile loads configuration from YAML, JSON, or TOML files.
//
// Format is auto-detected from extension (.yaml, .json, .toml). Nested
// documents are flattened to lowercase dot-separated keys; list elements get
// indexed segments (features.0, features.1).
//
// Example:
//
//	source := sourcefile.New("config.yaml", sourcefile.Options{Required: true})
//	cfg, err := halyard.NewLoader().WithSource(source).Load(ctx)
package sourcefile
