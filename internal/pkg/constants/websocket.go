package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Mission events
	EventSnapshot       = "snapshot"
	EventPositionUpdate = "position_update"
	EventStatusUpdate   = "status_update"
	EventStreamClosed   = "stream_closed"
)

// WebSocket error codes
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorUnauthorized    = "unauthorized"
	ErrorInternalError   = "internal_error"
	ErrorInvalidLink     = "invalid_link"
	ErrorMissionNotFound = "mission_not_found"
)
