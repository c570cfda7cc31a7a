// Package geomath implements the fixed-point integer math behind geofence
// containment checks. Every operation truncates toward zero in a fixed
// order, so any runtime replaying these steps computes bit-identical
// distances. Do not reorder operations or raise precision here: stored
// verification results must stay reproducible across implementations.
package geomath

// Scale is the shared fixed-point scale: coordinates arrive in
// micro-degrees, and the radian and cosine values derived from them carry
// the same 1e6 scale.
const Scale = 1_000_000

// piScaled is pi to six fractional digits, scaled by 1e6.
const piScaled = 3_141_592

// EarthRadiusMeters converts angular distance to meters on a spherical
// Earth.
const EarthRadiusMeters = 6_371_000

// Radians converts micro-degrees to radians scaled by 1e6: one
// multiplication, then one truncating division.
func Radians(micro int64) int64 {
	return micro * piScaled / (180 * Scale)
}

// CosTaylor approximates cos(x) for x in 1e6-scaled radians with the
// three-term series 1 - x^2/2 + x^4/24. Each product is rescaled by Scale
// immediately so every intermediate stays in the same fixed point. The
// result carries the 1e6 scale. The truncated series drifts as |x| grows:
// the residual is about x^6/720, under 0.0015 for latitudes within 57
// degrees and near 0.005 at 70 degrees.
func CosTaylor(x int64) int64 {
	x2 := x * x / Scale
	x4 := x2 * x2 / Scale
	return Scale - x2/2 + x4/24
}

// Isqrt returns the floor integer square root of n via Babylonian
// iteration. Non-positive input yields 0; perfect squares come back exact.
func Isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	z := (n + 1) / 2
	y := n
	for z < y {
		y = z
		z = (n/z + z) / 2
	}
	return y
}

// PlanarDistanceMeters approximates the distance in meters between two
// coordinates given in micro-degrees. The longitude delta is flattened by
// cos(lat1) and combined with the latitude delta as legs of a right
// triangle: a small-angle planar projection, not a great-circle distance.
// It is meant for separations far below the Earth radius (fence radii up to
// tens of kilometers); beyond that the projection itself dominates the
// error, and that behavior is kept as-is for portability. Truncation
// quantizes each converted coordinate by one count, about 6.4 m on the
// ground.
func PlanarDistanceMeters(lat1, lon1, lat2, lon2 int64) int64 {
	lat1R := Radians(lat1)
	lon1R := Radians(lon1)
	lat2R := Radians(lat2)
	lon2R := Radians(lon2)

	dLat := lat2R - lat1R
	dLon := lon2R - lon1R

	cosLat := CosTaylor(lat1R)

	x := dLon * cosLat / Scale
	y := dLat

	return Isqrt(x*x+y*y) * EarthRadiusMeters / Scale
}
