package constants

// Redis key formats
const (
	// Tracking Service
	KeyMissionPosition = "mission:position:%s" // Format: mission:position:{mission_id}

	// Trips Service
	KeyGeocode = "geocode:%s" // Format: geocode:{normalized_query}
)

// Redis hash fields
const (
	FieldLatitude   = "lat"
	FieldLongitude  = "lng"
	FieldSpeed      = "speed"
	FieldHeading    = "heading"
	FieldGeohash    = "geohash"
	FieldCapturedAt = "captured_at"
	FieldSampleID   = "sid"
)
