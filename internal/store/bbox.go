package store

// BBox is an axis-aligned bounding box in scaled-integer coordinates
// (see internal/fixedpoint). It is the teacher's geographic Bounds type
// (pkg/s57's region.go) reworked from float64 degrees to the fixed-point
// domain the ray-cast kernel and bbox-rejection test operate in.
type BBox struct {
	XMin, XMax, YMin, YMax int32
}

// Contains reports whether (x, y) falls within the box, inclusive of the
// boundary (spec.md §4.2: "a polygon is a candidate only if
// xmin ≤ qx ≤ xmax ∧ ymin ≤ qy ≤ ymax").
func (b BBox) Contains(x, y int32) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}
