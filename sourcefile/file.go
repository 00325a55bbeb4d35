package sourcefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/halyard-go/halyard"
)

// Options configures file source behavior.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// Required: if true, missing files cause an error. Default: false (returns empty map).
	Required bool
}

type fileSource struct {
	path string
	opts Options
}

// New creates a file-based configuration source.
func New(path string, opts Options) halyard.Source {
	return &fileSource{
		path: path,
		opts: opts,
	}
}

// Collect reads and parses the file, returning flattened typed configuration.
func (f *fileSource) Collect(ctx context.Context) (halyard.Map, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if f.opts.Required {
				return nil, fmt.Errorf("required config file not found: %s: %w", f.path, err)
			}
			return make(halyard.Map), nil
		}
		return nil, fmt.Errorf("read config file %s: %w", f.path, err)
	}

	format := f.opts.Format
	if format == "" {
		format = inferFormat(f.path)
	}

	var raw map[string]any
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse YAML file %s: %w", f.path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse JSON file %s: %w", f.path, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse TOML file %s: %w", f.path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: yaml, json, toml)", format)
	}

	result := make(halyard.Map)
	f.flatten("", raw, result)

	return result, nil
}

// flatten recursively flattens nested maps and lists to dot-separated keys.
// Scalars are wrapped as typed values tagged with this source's name.
func (f *fileSource) flatten(prefix string, value any, result halyard.Map) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			f.flatten(joinKey(prefix, key), val, result)
		}
	case map[any]any:
		for key, val := range v {
			keyStr, ok := key.(string)
			if !ok {
				continue
			}
			f.flatten(joinKey(prefix, keyStr), val, result)
		}
	case []any:
		for i, val := range v {
			f.flatten(joinKey(prefix, strconv.Itoa(i)), val, result)
		}
	default:
		if prefix != "" {
			result[strings.ToLower(prefix)] = halyard.FromAny(value, f.Name())
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Watch returns ErrWatchNotSupported (file watching not yet implemented).
func (f *fileSource) Watch(ctx context.Context) (<-chan halyard.ChangeEvent, error) {
	return nil, halyard.ErrWatchNotSupported
}

// Name returns a human-readable identifier for this source.
func (f *fileSource) Name() string {
	return "file:" + filepath.Base(f.path)
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
