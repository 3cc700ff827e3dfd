//go:build linux

package loader

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile returns the contents of path as a []byte, either memory-mapped
// (zero-copy, pages fault in lazily) or read fully into an owned buffer,
// per inMemory. The returned closer unmaps/releases the underlying
// resource and must be called when the dataset is discarded.
func mapFile(path string, inMemory bool) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, func() error { return nil }, nil
	}

	if inMemory {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return data, func() error { return nil }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
