package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackingSample is one immutable GPS reading tied to a mission
type TrackingSample struct {
	ID         int64     `json:"id" db:"id"`
	MissionID  uuid.UUID `json:"mission_id" db:"mission_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Speed      *float64  `json:"speed,omitempty" db:"speed"`
	Heading    *float64  `json:"heading,omitempty" db:"heading"`
	Geohash    string    `json:"geohash" db:"geohash"`
	CapturedAt time.Time `json:"captured_at" db:"captured_at"`
	ReceivedAt time.Time `json:"received_at" db:"received_at"`
}

// LocationReport is a position report submitted by a mission participant
type LocationReport struct {
	MissionID  uuid.UUID `json:"-"`
	ReporterID uuid.UUID `json:"-"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Speed      *float64  `json:"speed,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// Position is the derived current position of a mission
type Position struct {
	MissionID  uuid.UUID `json:"mission_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      *float64  `json:"speed,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	Geohash    string    `json:"geohash,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
	SampleID   int64     `json:"sample_id,omitempty"`
	Stale      bool      `json:"stale"`
}

// PositionFromSample projects a stored sample into a Position
func PositionFromSample(s *TrackingSample) *Position {
	return &Position{
		MissionID:  s.MissionID,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		Speed:      s.Speed,
		Heading:    s.Heading,
		Geohash:    s.Geohash,
		CapturedAt: s.CapturedAt,
		SampleID:   s.ID,
	}
}

// SubmitResult is returned to the reporter after a sample is accepted
type SubmitResult struct {
	Sample  *TrackingSample `json:"sample"`
	Current *Position       `json:"current"`
}
