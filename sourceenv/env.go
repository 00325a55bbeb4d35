package sourceenv

import (
	"context"
	"os"
	"strings"

	"github.com/halyard-go/halyard"
	"github.com/halyard-go/halyard/internal/literal"
	"github.com/halyard-go/halyard/internal/normalize"
)

// Origin is the provenance tag attached to every value collected from the
// process environment.
const Origin = "the environment"

var _ halyard.Source = Environment{}

// Environment collects configuration from environment variables.
//
// The zero value collects every variable verbatim. Builder methods return
// updated copies, so a configured Environment is immutable and freely
// shareable across goroutines.
type Environment struct {
	prefix      halyard.Optional[string]
	separator   halyard.Optional[string]
	ignoreEmpty bool
	tryParsing  bool
	environ     func() []string
}

// New creates an Environment with no prefix, no separator, empty values kept,
// and parsing disabled.
func New() Environment {
	return Environment{}
}

// WithPrefix creates an Environment that only collects variables starting
// with the given prefix.
func WithPrefix(prefix string) Environment {
	return New().Prefix(prefix)
}

// Prefix restricts collection to variables whose lowercased name starts with
// lowercase(prefix) followed by the group separator. The matched prefix is
// stripped: with prefix "config", CONFIG_DEBUG is collected as "debug" and
// OTHERVAR is excluded.
func (e Environment) Prefix(prefix string) Environment {
	e.prefix = halyard.Some(prefix)
	return e
}

// Separator sets the substring that separates key segments. Occurrences in
// collected keys are rewritten to dots (REDIS_PASSWORD → redis.password with
// separator "_"), and a non-empty separator also acts as the group separator
// gluing the prefix to the rest of the key. An empty separator disables
// rewriting.
func (e Environment) Separator(separator string) Environment {
	e.separator = halyard.Some(separator)
	return e
}

// IgnoreEmpty treats variables with empty values as unset.
func (e Environment) IgnoreEmpty(ignore bool) Environment {
	e.ignoreEmpty = ignore
	return e
}

// TryParsing enables best-effort typing of values: boolean, then 64-bit
// integer, then 64-bit float, falling back to string. Enabling it costs up to
// three parse attempts per variable.
func (e Environment) TryParsing(try bool) Environment {
	e.tryParsing = try
	return e
}

// Environ overrides the environment snapshot, mainly for tests. Entries use
// the "NAME=value" form of os.Environ. Passing nil restores the default of
// reading the live process environment.
func (e Environment) Environ(environ func() []string) Environment {
	e.environ = environ
	return e
}

// Name identifies this source in loader diagnostics.
func (e Environment) Name() string {
	if prefix, ok := e.prefix.Get(); ok {
		return "env:" + prefix
	}
	return "env"
}

// Collect reads one snapshot of the environment and returns the filtered,
// normalized, typed mapping. It never fails: unmatched prefixes, empty values
// and unparseable literals are excluded or fall back rather than erroring.
func (e Environment) Collect(ctx context.Context) (halyard.Map, error) {
	m := make(halyard.Map)

	separator := e.separator.OrDefault("")

	// The group separator glues the prefix to the remainder of the key. It
	// defaults to "_" independently of whether segment rewriting is enabled.
	groupSeparator := separator
	if groupSeparator == "" {
		groupSeparator = "_"
	}

	var prefixPattern string
	prefix, hasPrefix := e.prefix.Get()
	if hasPrefix {
		prefixPattern = strings.ToLower(prefix) + groupSeparator
	}

	for _, entry := range e.snapshot() {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}

		// Empty variables are treated as unset, independent of the prefix filter.
		if e.ignoreEmpty && value == "" {
			continue
		}

		key := strings.ToLower(name)

		if hasPrefix {
			if !strings.HasPrefix(key, prefixPattern) {
				continue
			}
			// A name equal to the pattern leaves an empty key; it is kept.
			key = key[len(prefixPattern):]
		}

		key = normalize.ToLowerDotPath(key, separator)

		if e.tryParsing {
			m[key] = halyard.FromAny(literal.Parse(value), Origin)
		} else {
			m[key] = halyard.StringValue(value, Origin)
		}
	}

	return m, nil
}

func (e Environment) snapshot() []string {
	if e.environ != nil {
		return e.environ()
	}
	return os.Environ()
}

// Watch returns ErrWatchNotSupported (env vars don't change at runtime).
func (e Environment) Watch(ctx context.Context) (<-chan halyard.ChangeEvent, error) {
	return nil, halyard.ErrWatchNotSupported
}
