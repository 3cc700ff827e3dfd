package loader

import "fmt"

// LoadError wraps a failure to open, map, or decode one dataset file.
// Construction-time failures are never retried — a dataset directory either
// opens cleanly or the engine refuses to construct.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loader: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
