// Package fixedpoint converts between floating-point degrees and the
// signed 32-bit scaled-integer representation used throughout the on-disk
// dataset and the point-in-polygon kernel.
package fixedpoint

import (
	"fmt"
	"math"
)

// Scale is the fixed-point scale factor: a degree value d is stored as
// round(d * Scale). At the equator this gives a worst-case spatial error
// of roughly 1 centimeter.
const Scale = 10_000_000

const (
	minLon = -180.0
	maxLon = 180.0
	minLat = -90.0
	maxLat = 90.0
)

// OutOfBoundsError reports a degree value outside its axis's valid range.
type OutOfBoundsError struct {
	Axis  string // "longitude" or "latitude"
	Value float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("fixedpoint: %s %g out of bounds", e.Axis, e.Value)
}

// Lon converts a longitude in degrees to its scaled-integer representation.
//
// +180 is folded to -180 before scaling, matching the antimeridian crop
// applied by the dataset-compilation pipeline: the two values name the same
// meridian, and every shortcut-cell lookup downstream assumes the folded
// form.
func Lon(deg float64) (int32, error) {
	if deg == maxLon {
		deg = minLon
	}
	if deg < minLon || deg > maxLon {
		return 0, &OutOfBoundsError{Axis: "longitude", Value: deg}
	}
	return toFixed(deg), nil
}

// Lat converts a latitude in degrees to its scaled-integer representation.
func Lat(deg float64) (int32, error) {
	if deg < minLat || deg > maxLat {
		return 0, &OutOfBoundsError{Axis: "latitude", Value: deg}
	}
	return toFixed(deg), nil
}

func toFixed(deg float64) int32 {
	return int32(math.Round(deg * Scale))
}

// ToDegrees converts a scaled-integer coordinate back to floating-point
// degrees.
func ToDegrees(v int32) float64 {
	return float64(v) / Scale
}
