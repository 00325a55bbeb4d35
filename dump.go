package halyard

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Map.Dump.
type dumpConfig struct {
	withOrigins bool   // Include provenance tag for each value
	asJSON      bool   // Output as JSON instead of text format
	indent      string // Indentation for JSON output (default: "  ")
}

// WithOrigins includes each value's provenance tag in the output.
func WithOrigins() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.withOrigins = true
	}
}

// AsJSON outputs configuration as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// Dump writes a human-readable listing of the configuration, sorted by key.
// Text format is "key = value" per line; with WithOrigins the provenance tag
// is appended in parentheses. Returns an error if writing fails.
func (m Map) Dump(w io.Writer, opts ...DumpOption) error {
	cfg := dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(&cfg)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if cfg.asJSON {
		return m.dumpJSON(w, keys, cfg)
	}

	for _, k := range keys {
		v := m[k]
		var err error
		if cfg.withOrigins {
			_, err = fmt.Fprintf(w, "%s = %s (%s)\n", k, v.AsString(), v.Origin())
		} else {
			_, err = fmt.Fprintf(w, "%s = %s\n", k, v.AsString())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (m Map) dumpJSON(w io.Writer, keys []string, cfg dumpConfig) error {
	out := make(map[string]any, len(m))
	for _, k := range keys {
		v := m[k]
		if cfg.withOrigins {
			out[k] = map[string]any{
				"value":  v.Raw(),
				"origin": v.Origin(),
			}
		} else {
			out[k] = v.Raw()
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", cfg.indent)
	return enc.Encode(out)
}
