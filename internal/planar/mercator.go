package planar

import "math"

const radianDegreeMultiplier = 180 / math.Pi

// SphericalMercatorPoleLimit is the highest latitude representable in
// spherical mercator, about 85.0511287798066 degrees.
var SphericalMercatorPoleLimit = SphericalMercatorLatitudeProjection(180)

// SphericalMercatorLatitudeProjection converts a mercator Y, expressed in
// degrees, back to a latitude.
func SphericalMercatorLatitudeProjection(y float64) float64 {
	return math.Atan(math.Sinh(y/radianDegreeMultiplier)) * radianDegreeMultiplier
}

// LocalLatitudeFromSphericalMercatorProjection converts a latitude to a
// mercator Y in degrees. Input beyond the pole limit is clamped first.
func LocalLatitudeFromSphericalMercatorProjection(lat float64) float64 {
	safe := math.Max(-SphericalMercatorPoleLimit, math.Min(SphericalMercatorPoleLimit, lat))
	rad := safe / radianDegreeMultiplier
	return math.Log((1+math.Sin(rad))/math.Cos(rad)) * radianDegreeMultiplier
}
