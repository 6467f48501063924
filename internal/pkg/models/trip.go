package models

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"lat" validate:"min=-90,max=90"`
	Longitude float64 `json:"lng" validate:"min=-180,max=180"`
}

// Trip represents a shared-ride offer
type Trip struct {
	ID              uuid.UUID   `json:"id"`
	OwnerID         uuid.UUID   `json:"owner_id"`
	OriginCity      string      `json:"origin_city"`
	OriginLat       *float64    `json:"origin_lat,omitempty"`
	OriginLng       *float64    `json:"origin_lng,omitempty"`
	DestinationCity string      `json:"destination_city"`
	DestinationLat  *float64    `json:"destination_lat,omitempty"`
	DestinationLng  *float64    `json:"destination_lng,omitempty"`
	DepartureAt     time.Time   `json:"departure_at"`
	SeatCount       int         `json:"seat_count"`
	PricePerSeat    *float64    `json:"price_per_seat,omitempty"`
	Participants    []uuid.UUID `json:"participants"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Origin returns the origin coordinates if both are known
func (t *Trip) Origin() *Coordinates {
	if t.OriginLat == nil || t.OriginLng == nil {
		return nil
	}
	return &Coordinates{Latitude: *t.OriginLat, Longitude: *t.OriginLng}
}

// Destination returns the destination coordinates if both are known
func (t *Trip) Destination() *Coordinates {
	if t.DestinationLat == nil || t.DestinationLng == nil {
		return nil
	}
	return &Coordinates{Latitude: *t.DestinationLat, Longitude: *t.DestinationLng}
}

// HasParticipant reports whether userID already joined the trip
func (t *Trip) HasParticipant(userID uuid.UUID) bool {
	for _, p := range t.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// SeatsLeft returns the number of free seats
func (t *Trip) SeatsLeft() int {
	left := t.SeatCount - len(t.Participants)
	if left < 0 {
		return 0
	}
	return left
}

// TripSearchRequest is the body of a trip search
type TripSearchRequest struct {
	Origin            string       `json:"origin" validate:"required_without_all=OriginCoords Destination DestinationCoords,omitempty,notblank,max=255"`
	OriginCoords      *Coordinates `json:"origin_coords,omitempty"`
	Destination       string       `json:"destination" validate:"required_without_all=Origin OriginCoords DestinationCoords,omitempty,notblank,max=255"`
	DestinationCoords *Coordinates `json:"destination_coords,omitempty"`
	DepartureAfter    *time.Time   `json:"departure_after,omitempty"`
}

// MatchMode tells which pass of the matcher produced a result
type MatchMode string

const (
	MatchModeGeo  MatchMode = "geo"
	MatchModeText MatchMode = "text"
)

// TripMatch is a ranked search result
type TripMatch struct {
	Trip                  *Trip    `json:"trip"`
	OriginDistanceKm      *float64 `json:"origin_distance_km,omitempty"`
	DestinationDistanceKm *float64 `json:"destination_distance_km,omitempty"`
	TotalDistanceKm       float64  `json:"total_distance_km"`
}

// TripSearchResult is the response of a trip search
type TripSearchResult struct {
	Mode    MatchMode   `json:"mode"`
	Matches []TripMatch `json:"matches"`
}
