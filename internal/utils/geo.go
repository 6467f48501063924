package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// SampleGeohashPrecision gives cells of roughly 5 m
const SampleGeohashPrecision = 9

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// HaversineKm returns the great-circle distance between two points in
// kilometers. The inner term is clamped to 1 so rounding on near-antipodal
// points cannot produce NaN.
func HaversineKm(p1, p2 GeoPoint) float64 {
	lat1 := toRadians(p1.Latitude)
	lat2 := toRadians(p2.Latitude)
	dLat := lat2 - lat1
	dLng := toRadians(p2.Longitude - p1.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ValidCoordinates reports whether lat/lng are inside their ranges
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// EncodeGeohash encodes a point as a geohash of the given precision
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.DecodeCenter(hash)
}
