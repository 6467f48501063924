package models

import (
	"time"

	"github.com/google/uuid"
)

// MissionEventType identifies the kind of change carried by a MissionEvent
type MissionEventType string

const (
	EventTypePosition    MissionEventType = "tracking.position"
	EventTypeStatus      MissionEventType = "mission.status"
	EventTypeLinkRevoked MissionEventType = "tracking.link_revoked"
	// EventTypeSnapshot only appears on public streams, as their first event
	EventTypeSnapshot MissionEventType = "tracking.snapshot"
)

// MissionEvent is the payload fanned out on the realtime bus for one mission.
// OccurredAt doubles as the version used to discard out-of-order deliveries:
// captured_at for positions, the transition timestamp for status changes.
type MissionEvent struct {
	Type       MissionEventType `json:"type"`
	MissionID  uuid.UUID        `json:"mission_id"`
	Status     MissionStatus    `json:"status,omitempty"`
	Position   *Position        `json:"position,omitempty"`
	Token      string           `json:"token,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewPositionEvent builds a position event from a derived position
func NewPositionEvent(p *Position) MissionEvent {
	return MissionEvent{
		Type:       EventTypePosition,
		MissionID:  p.MissionID,
		Position:   p,
		OccurredAt: p.CapturedAt,
	}
}

// NewStatusEvent builds a status event for a committed transition
func NewStatusEvent(missionID uuid.UUID, status MissionStatus, at time.Time) MissionEvent {
	return MissionEvent{
		Type:       EventTypeStatus,
		MissionID:  missionID,
		Status:     status,
		OccurredAt: at,
	}
}

// NewLinkRevokedEvent tells the public streams opened with token to stop
func NewLinkRevokedEvent(missionID uuid.UUID, token string, at time.Time) MissionEvent {
	return MissionEvent{
		Type:       EventTypeLinkRevoked,
		MissionID:  missionID,
		Token:      token,
		OccurredAt: at,
	}
}

// PublicEvent is what an anonymous tracking stream receives. It carries no
// mission identifier.
type PublicEvent struct {
	Type     MissionEventType `json:"type"`
	Status   MissionStatus    `json:"status,omitempty"`
	Mission  *PublicMission   `json:"mission,omitempty"`
	Tracking *PublicPosition  `json:"tracking,omitempty"`
}

// NewPublicEvent strips identifying fields from a mission event
func NewPublicEvent(e MissionEvent) PublicEvent {
	return PublicEvent{
		Type:     e.Type,
		Status:   e.Status,
		Tracking: NewPublicPosition(e.Position),
	}
}
