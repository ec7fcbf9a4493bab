package geom

import "geoclip/internal/planar"

// ProjectMercator replaces every latitude with its spherical mercator Y,
// in degrees. Latitudes past the pole limit are clamped.
func ProjectMercator(d Data) Data {
	return d.mapCoordinates(func(c planar.Coordinate) planar.Coordinate {
		return planar.Coordinate{X: c.X, Y: planar.LocalLatitudeFromSphericalMercatorProjection(c.Y)}
	})
}

// UnprojectMercator is the inverse of ProjectMercator.
func UnprojectMercator(d Data) Data {
	return d.mapCoordinates(func(c planar.Coordinate) planar.Coordinate {
		return planar.Coordinate{X: c.X, Y: planar.SphericalMercatorLatitudeProjection(c.Y)}
	})
}
