//go:build !linux

package loader

import "os"

// mapFile falls back to a plain read on platforms without the unix mmap
// syscalls wired here; inMemory is ignored since there is no mapped mode to
// distinguish it from.
func mapFile(path string, inMemory bool) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
