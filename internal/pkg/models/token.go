package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackingToken grants anonymous read-only access to a single mission
type TrackingToken struct {
	Token     string     `json:"token" db:"token"`
	MissionID uuid.UUID  `json:"mission_id" db:"mission_id"`
	CreatedBy uuid.UUID  `json:"created_by" db:"created_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	Revoked   bool       `json:"revoked" db:"revoked"`
	RevokedAt *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
}

// Usable reports whether the token may still resolve at time now
func (t *TrackingToken) Usable(now time.Time) bool {
	if t.Revoked {
		return false
	}
	return t.ExpiresAt == nil || now.Before(*t.ExpiresAt)
}

// ShareLink is returned to the mission owner after issuing a token
type ShareLink struct {
	Token     string     `json:"token"`
	URL       string     `json:"url,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// PublicMission is the anonymous view of a mission. It deliberately has no
// identity or contact fields.
type PublicMission struct {
	Reference       string        `json:"reference"`
	Title           string        `json:"title"`
	PickupAddress   string        `json:"pickup_address"`
	DeliveryAddress string        `json:"delivery_address"`
	Status          MissionStatus `json:"status"`
}

// PublicPosition is the anonymous view of a mission's current position
type PublicPosition struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Speed      *float64  `json:"speed,omitempty"`
	Heading    *float64  `json:"heading,omitempty"`
	LastUpdate time.Time `json:"last_update"`
}

// PublicTracking is the response of the public tracking retrieval
type PublicTracking struct {
	Mission  PublicMission   `json:"mission"`
	Tracking *PublicPosition `json:"tracking,omitempty"`
}

// NewPublicMission projects a mission into its public view
func NewPublicMission(m *Mission) PublicMission {
	return PublicMission{
		Reference:       m.Reference,
		Title:           m.Title,
		PickupAddress:   m.PickupAddress,
		DeliveryAddress: m.DeliveryAddress,
		Status:          m.Status,
	}
}

// NewPublicPosition projects a position into its public view
func NewPublicPosition(p *Position) *PublicPosition {
	if p == nil {
		return nil
	}
	return &PublicPosition{
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Speed:      p.Speed,
		Heading:    p.Heading,
		LastUpdate: p.CapturedAt,
	}
}
