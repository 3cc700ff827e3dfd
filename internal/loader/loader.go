// Package loader resolves a dataset directory (spec.md §6) into the
// in-process views internal/store and internal/shortcut operate over,
// either by memory-mapping each file or by reading it fully into an owned
// buffer (Options.InMemory).
package loader

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/geoniles/tzfinder/internal/fbfmt"
	"github.com/geoniles/tzfinder/internal/npyio"
	"github.com/geoniles/tzfinder/internal/shortcut"
	"github.com/geoniles/tzfinder/internal/store"
)

// Dataset is the fully loaded, ready-to-query view over one dataset
// directory. Close releases any mapped file regions; a Dataset must not be
// used afterward.
type Dataset struct {
	Store     *store.PolygonStore
	Shortcuts *shortcut.Index
	Version   string
	HasOceans bool

	closers []func() error
}

// Close unmaps/releases every file backing the dataset, in reverse order of
// mapping. Safe to call once; Dataset is unusable afterward.
func (d *Dataset) Close() error {
	var first error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	d.closers = nil
	return first
}

// Load reads and validates every file spec.md §6 fixes (plus the optional
// manifest.json of SPEC_FULL.md §7) from dir and returns a ready Dataset.
// Any failure is fatal: a dataset either loads completely and correctly, or
// Load returns a non-nil error and no partially-usable Dataset.
func Load(dir string, opts Options) (ds *Dataset, err error) {
	d := &Dataset{}
	defer func() {
		if err != nil {
			d.Close()
		}
	}()

	log.Printf("loader: opening dataset directory %s (in-memory=%v)", dir, opts.InMemory)

	names, err := d.readFile(dir, "timezone_names.txt", opts)
	if err != nil {
		return nil, err
	}
	zones, err := store.ParseZoneTable(names)
	if err != nil {
		return nil, &LoadError{Path: "timezone_names.txt", Err: err}
	}

	zoneIDsRaw, err := d.readFile(dir, "zone_ids.npy", opts)
	if err != nil {
		return nil, err
	}
	zoneIDs, err := npyio.Parse(zoneIDsRaw)
	if err != nil {
		return nil, &LoadError{Path: "zone_ids.npy", Err: err}
	}

	width, err := resolveZoneIDWidth(dir, zoneIDs)
	if err != nil {
		return nil, err
	}

	zonePositionsRaw, err := d.readFile(dir, "zone_positions.npy", opts)
	if err != nil {
		return nil, err
	}
	zonePositions, err := npyio.Parse(zonePositionsRaw)
	if err != nil {
		return nil, &LoadError{Path: "zone_positions.npy", Err: err}
	}

	bboxArrays := make(map[string]*npyio.Array, 4)
	for _, name := range []string{"xmin.npy", "xmax.npy", "ymin.npy", "ymax.npy"} {
		raw, err := d.readFile(dir, name, opts)
		if err != nil {
			return nil, err
		}
		arr, err := npyio.Parse(raw)
		if err != nil {
			return nil, &LoadError{Path: name, Err: err}
		}
		bboxArrays[name] = arr
	}

	outersRaw, err := d.readFile(dir, filepath.Join("boundaries", "coordinates.fbs"), opts)
	if err != nil {
		return nil, err
	}
	outers := fbfmt.GetRootAsPolyColl(outersRaw, 0)

	holesRaw, err := d.readFile(dir, filepath.Join("holes", "coordinates.fbs"), opts)
	if err != nil {
		return nil, err
	}
	holes := fbfmt.GetRootAsPolyColl(holesRaw, 0)

	holeRegistryRaw, err := d.readFile(dir, "hole_registry.json", opts)
	if err != nil {
		return nil, err
	}
	holeRegistry, err := store.ParseHoleRegistry(holeRegistryRaw, outers.PolygonsLength())
	if err != nil {
		return nil, &LoadError{Path: "hole_registry.json", Err: err}
	}

	polyStore, err := store.New(
		outers, holes,
		bboxArrays["xmin.npy"], bboxArrays["xmax.npy"], bboxArrays["ymin.npy"], bboxArrays["ymax.npy"],
		zoneIDs, width, zonePositions, holeRegistry, zones,
	)
	if err != nil {
		return nil, err
	}

	shortcutsFile := fmt.Sprintf("hybrid_shortcuts_%s.fbs", widthSuffix(width))
	shortcutsRaw, err := d.readFile(dir, shortcutsFile, opts)
	if err != nil {
		return nil, err
	}
	sc := fbfmt.GetRootAsShortcuts(shortcutsRaw, 0)

	d.Store = polyStore
	d.Shortcuts = shortcut.New(sc)
	d.HasOceans = zones.HasOceans()

	if m, err := readManifest(dir); err == nil && m != nil {
		d.Version = m.Version
	}

	return d, nil
}

// readFile maps or reads path under dir, registering its closer on d so
// Load's defer can unwind everything opened so far on a later failure.
func (d *Dataset) readFile(dir, name string, opts Options) ([]byte, error) {
	path := filepath.Join(dir, name)
	data, closer, err := mapFile(path, opts.InMemory)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	d.closers = append(d.closers, closer)
	return data, nil
}

// resolveZoneIDWidth prefers manifest.json's explicit width (SPEC_FULL.md
// §7) and falls back to sniffing zone_ids.npy's own dtype so the file set
// spec.md §6 fixes alone remains sufficient.
func resolveZoneIDWidth(dir string, zoneIDs *npyio.Array) (store.ZoneIDWidth, error) {
	if m, err := readManifest(dir); err == nil && m != nil {
		switch m.ZoneIDWidth {
		case 8:
			return store.Width8, nil
		case 16:
			return store.Width16, nil
		default:
			return 0, &LoadError{Path: manifestFile, Err: fmt.Errorf("unsupported zone_id_width %d", m.ZoneIDWidth)}
		}
	}
	return zoneIDWidthFromArray(zoneIDs)
}

// readManifest reads and parses manifest.json if present. A missing file is
// not an error — it signals the dtype-sniffing fallback path.
func readManifest(dir string) (*manifest, error) {
	raw, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseManifest(raw)
}

func widthSuffix(w store.ZoneIDWidth) string {
	if w == store.Width16 {
		return "u16"
	}
	return "u8"
}
