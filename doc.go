// Package halyard provides hierarchical configuration loading from pluggable sources.
//
// Quick Start:
//
//	env := sourceenv.WithPrefix("app").Separator("__").TryParsing(true)
//
//	cfg, err := halyard.NewLoader().
//	    WithSource(sourcefile.New("config.yaml", sourcefile.Options{})).
//	    WithSource(env).
//	    Load(context.Background())
//
//	port, ok := cfg.Int("database.port")
//
// Each source produces lowercase dot-separated keys mapped to typed values
// tagged with their origin. Sources are merged in order (later override earlier).
//
// See example_test.go and the sourceenv, sourcefile, and sourcedotenv packages.
package halyard
