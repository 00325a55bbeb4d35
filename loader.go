package halyard

import (
	"context"
	"strings"
)

// Loader merges configuration from multiple sources.
// Sources are collected in order (later override earlier). A configured Loader
// is safe to share across goroutines; every Load builds a fresh Map.
type Loader struct {
	sources []Source
}

// NewLoader creates a Loader with no sources.
func NewLoader() *Loader {
	return &Loader{sources: make([]Source, 0)}
}

// WithSource appends a source. Later sources take precedence during merge.
func (l *Loader) WithSource(src Source) *Loader {
	l.sources = append(l.sources, src)
	return l
}

// Load collects every source and merges the results by key.
// A failing source aborts the load; the returned error is a *SourceError
// naming the source. Precedence between sources is last-wins per key.
func (l *Loader) Load(ctx context.Context) (Map, error) {
	merged := make(Map)

	for _, src := range l.sources {
		data, err := src.Collect(ctx)
		if err != nil {
			return nil, &SourceError{Source: src.Name(), Err: err}
		}

		for key, value := range data {
			// Sources are expected to emit lowercase keys already; lowering
			// here keeps the merge well-defined for third-party sources.
			merged[strings.ToLower(key)] = value
		}
	}

	return merged, nil
}
