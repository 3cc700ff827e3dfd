package tzfinder

import "github.com/geoniles/tzfinder/internal/loader"

// Options configures dataset loading behavior at Open time.
type Options = loader.Options

// DefaultOptions returns the default loading options: memory-mapped dataset
// files, page-fault-on-first-access.
func DefaultOptions() Options {
	return loader.DefaultOptions()
}
