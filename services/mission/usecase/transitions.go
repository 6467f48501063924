package usecase

import "github.com/piresc/convoy/internal/pkg/models"

// transitions is the mission lifecycle graph. Terminal statuses have no
// outgoing edges.
var transitions = map[models.MissionStatus][]models.MissionStatus{
	models.MissionStatusPending:    {models.MissionStatusInProgress, models.MissionStatusCancelled},
	models.MissionStatusInProgress: {models.MissionStatusCompleted, models.MissionStatusCancelled},
}

// CanTransition reports whether from -> to is an edge of the lifecycle graph
func CanTransition(from, to models.MissionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
