package constants

// NATS Subjects
const (
	// SubjectMissionEvents carries every event of one mission.
	// Format: convoy.mission.{mission_id}.events
	SubjectMissionEvents = "convoy.mission.%s.events"
	// SubjectAllMissionEvents matches the events of every mission
	SubjectAllMissionEvents = "convoy.mission.*.events"
)
