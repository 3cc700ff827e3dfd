package tzfinder

import (
	"fmt"

	"github.com/geoniles/tzfinder/internal/fixedpoint"
	"github.com/geoniles/tzfinder/internal/loader"
	"github.com/geoniles/tzfinder/internal/store"
)

// OutOfBoundsError reports a longitude or latitude outside its valid range.
// It is the only error a query procedure returns for caller-supplied input;
// every other error indicates a corrupt or unreadable dataset.
type OutOfBoundsError = fixedpoint.OutOfBoundsError

// CorruptDataError indicates the loaded dataset violates one of its own
// structural invariants (spec.md §7). Fatal: the engine should not continue
// serving queries.
type CorruptDataError = store.CorruptDataError

// LoadError wraps a failure reading or mapping a dataset file at Open time.
type LoadError = loader.LoadError

// UnknownZoneError is returned by GetGeometry when the requested zone name
// or id is not present in the loaded dataset.
type UnknownZoneError struct {
	Query interface{}
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("tzfinder: unknown zone %v", e.Query)
}
