package sourcedotenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/halyard-go/halyard"
	"github.com/halyard-go/halyard/internal/literal"
	"github.com/halyard-go/halyard/internal/normalize"
)

// levelSeparator splits dotenv keys into nested path segments.
// Double underscore, so single underscores survive within a segment.
const levelSeparator = "__"

// Options configures dotenv source behavior.
type Options struct {
	// Required: if true, missing files cause an error. Default: false (returns empty map).
	Required bool

	// TryParsing enables best-effort typing of values (boolean, integer, float).
	TryParsing bool
}

type dotenvSource struct {
	path string
	opts Options
}

// New creates a configuration source backed by a .env file.
func New(path string, opts Options) halyard.Source {
	return &dotenvSource{
		path: path,
		opts: opts,
	}
}

// Collect parses the .env file and returns normalized typed configuration.
func (d *dotenvSource) Collect(ctx context.Context) (halyard.Map, error) {
	vars, err := godotenv.Read(d.path)
	if err != nil {
		if os.IsNotExist(err) && !d.opts.Required {
			return make(halyard.Map), nil
		}
		return nil, fmt.Errorf("read dotenv file %s: %w", d.path, err)
	}

	result := make(halyard.Map, len(vars))
	for name, value := range vars {
		key := normalize.ToLowerDotPath(name, levelSeparator)

		if d.opts.TryParsing {
			result[key] = halyard.FromAny(literal.Parse(value), d.Name())
		} else {
			result[key] = halyard.StringValue(value, d.Name())
		}
	}

	return result, nil
}

// Watch returns ErrWatchNotSupported (dotenv files are read once at startup).
func (d *dotenvSource) Watch(ctx context.Context) (<-chan halyard.ChangeEvent, error) {
	return nil, halyard.ErrWatchNotSupported
}

// Name returns a human-readable identifier for this source.
func (d *dotenvSource) Name() string {
	return "dotenv:" + filepath.Base(d.path)
}
