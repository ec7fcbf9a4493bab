// Package planar is a small 2-D geometry kernel: coordinates, axis-aligned
// boxes, segments and vertex sequences, plus clipping of polylines and
// polygons against a box.
//
// Everything here is synchronous and allocation-light. Values are plain
// structs; the only mutating operation is (*Multipoint).MakeClockwise.
// Self-intersecting polygons are not supported.
package planar
