package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrForbidden       = errors.New("forbidden")

	// ErrInvalidTransition is matched by every TransitionError
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStaleState means the mission changed between read and write
	ErrStaleState = errors.New("mission status changed concurrently")

	ErrInvalidSample = errors.New("invalid tracking sample")

	// ErrInvalidOrExpiredLink is the single error returned for every failure
	// to resolve a share token.
	ErrInvalidOrExpiredLink = errors.New("invalid or expired tracking link")

	ErrTripNotFound       = errors.New("trip not found")
	ErrTripFull           = errors.New("trip is full")
	ErrGeocodeNotFound    = errors.New("no geocoding result")
	ErrGeocodeUnavailable = errors.New("geocoding service unavailable")
	ErrStaleSearch        = errors.New("search superseded by a newer request")
)

// TransitionError reports a transition the state machine does not allow
type TransitionError struct {
	Current   MissionStatus
	Requested MissionStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition mission from %s to %s", e.Current, e.Requested)
}

// Is makes errors.Is(err, ErrInvalidTransition) hold for any TransitionError
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
