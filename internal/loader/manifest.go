package loader

import (
	"errors"

	json "github.com/goccy/go-json"

	"github.com/geoniles/tzfinder/internal/npyio"
	"github.com/geoniles/tzfinder/internal/store"
)

var errUnsupportedZoneIDDtype = errors.New("zone_ids.npy dtype is neither u1 nor u2")

// manifestFile is the optional fast-path file naming the dataset's zone-id
// width and version. Absent, the width is recovered by sniffing
// zone_ids.npy's dtype instead.
const manifestFile = "manifest.json"

// manifest mirrors manifest.json: { "zone_id_width": 8|16, "version": "...", "oceans": bool }.
type manifest struct {
	ZoneIDWidth int    `json:"zone_id_width"`
	Version     string `json:"version"`
	Oceans      bool   `json:"oceans"`
}

func parseManifest(data []byte) (*manifest, error) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// zoneIDWidthFromArray recovers the zone-id column width by sniffing the
// already-parsed zone_ids.npy array's dtype, used when manifest.json is
// absent.
func zoneIDWidthFromArray(arr *npyio.Array) (store.ZoneIDWidth, error) {
	switch arr.DType {
	case npyio.Uint8:
		return store.Width8, nil
	case npyio.Uint16:
		return store.Width16, nil
	default:
		return 0, &LoadError{Path: "zone_ids.npy", Err: errUnsupportedZoneIDDtype}
	}
}
