package loader

// Options configures dataset loading behavior.
type Options struct {
	// InMemory controls whether dataset files are read fully into owned
	// buffers (true) or memory-mapped (false, the default). Mapped mode
	// defers page-ins to first access; in-memory mode pays that cost up
	// front at Open time in exchange for steady-state determinism.
	InMemory bool
}

// DefaultOptions returns the default loading options: memory-mapped,
// page-fault-on-first-access.
func DefaultOptions() Options {
	return Options{InMemory: false}
}
