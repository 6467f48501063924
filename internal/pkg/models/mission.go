package models

import (
	"time"

	"github.com/google/uuid"
)

// MissionStatus represents the lifecycle status of a mission
type MissionStatus string

const (
	MissionStatusPending    MissionStatus = "pending"
	MissionStatusInProgress MissionStatus = "in_progress"
	MissionStatusCompleted  MissionStatus = "completed"
	MissionStatusCancelled  MissionStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses
func (s MissionStatus) IsValid() bool {
	switch s {
	case MissionStatusPending, MissionStatusInProgress, MissionStatusCompleted, MissionStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition can leave s
func (s MissionStatus) IsTerminal() bool {
	return s == MissionStatusCompleted || s == MissionStatusCancelled
}

// Mission represents a scheduled vehicle transport job
type Mission struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	Reference       string        `json:"reference" db:"reference"`
	Title           string        `json:"title" db:"title"`
	Status          MissionStatus `json:"status" db:"status"`
	PickupAddress   string        `json:"pickup_address" db:"pickup_address"`
	DeliveryAddress string        `json:"delivery_address" db:"delivery_address"`
	OwnerID         uuid.UUID     `json:"owner_id" db:"owner_id"`
	DriverID        *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	ContactPhone    string        `json:"contact_phone,omitempty" db:"contact_phone"`
	ContactEmail    string        `json:"contact_email,omitempty" db:"contact_email"`
	Archived        bool          `json:"archived" db:"archived"`
	StartedAt       *time.Time    `json:"started_at,omitempty" db:"started_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// IsParticipant reports whether userID is the mission owner or its assigned driver
func (m *Mission) IsParticipant(userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}
	if m.OwnerID == userID {
		return true
	}
	return m.DriverID != nil && *m.DriverID == userID
}

// TransitionRequest is the body of a status transition call
type TransitionRequest struct {
	Status MissionStatus `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}
