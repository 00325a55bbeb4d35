package halyard

import "fmt"

// SourceError reports a source that failed to collect.
type SourceError struct {
	Source string // Source identifier (e.g., "file:config.yaml")
	Err    error
}

// Error formats the failure with the originating source name.
func (e *SourceError) Error() string {
	return fmt.Sprintf("collect source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying source error.
func (e *SourceError) Unwrap() error {
	return e.Err
}
