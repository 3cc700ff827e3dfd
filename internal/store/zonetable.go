package store

import (
	"fmt"
	"strings"
)

// ZoneTable is the ordered list Z of unique IANA zone names from
// timezone_names.txt. The slice index is the zone id.
type ZoneTable struct {
	names  []string
	byName map[string]int
}

// ParseZoneTable parses the LF-terminated, one-name-per-line contents of
// timezone_names.txt.
func ParseZoneTable(data []byte) (*ZoneTable, error) {
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, fmt.Errorf("store: timezone_names.txt is empty")
	}
	names := strings.Split(text, "\n")
	byName := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("store: timezone_names.txt line %d is blank", i+1)
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("store: timezone_names.txt duplicate name %q", name)
		}
		byName[name] = i
	}
	return &ZoneTable{names: names, byName: byName}, nil
}

// Len returns N, the number of zones.
func (z *ZoneTable) Len() int { return len(z.names) }

// Name returns the name of zone id id. Panics if id is out of range — an
// out-of-range zone id can only arise from a corrupted dataset, which is a
// fatal condition per spec.md §7.
func (z *ZoneTable) Name(id int) string {
	return z.names[id]
}

// Names returns the full ordered zone-name table.
func (z *ZoneTable) Names() []string {
	out := make([]string, len(z.names))
	copy(out, z.names)
	return out
}

// ID returns the zone id for name, and whether it was found.
func (z *ZoneTable) ID(name string) (int, bool) {
	id, ok := z.byName[name]
	return id, ok
}

// HasOceans reports whether any zone name is an Etc/GMT ocean zone,
// indicating this is the ocean-inclusive (full) dataset rather than the
// reduced land-only one.
func (z *ZoneTable) HasOceans() bool {
	for _, n := range z.names {
		if strings.HasPrefix(n, "Etc/GMT") {
			return true
		}
	}
	return false
}
