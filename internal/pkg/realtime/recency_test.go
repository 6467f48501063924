package realtime

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestRecencyGuard(t *testing.T) {
	g := NewRecencyGuard()
	missionID := uuid.New()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	newer := positionEvent(missionID, base, 48.85)
	older := positionEvent(missionID, base.Add(-10*time.Second), 48.80)

	assert.True(t, g.Accept(newer))
	assert.False(t, g.Accept(newer), "duplicate delivery")
	assert.False(t, g.Accept(older), "late delivery")

	// status events are versioned independently of positions
	assert.True(t, g.Accept(models.NewStatusEvent(missionID, models.MissionStatusInProgress, base.Add(-time.Hour))))

	// missions are independent
	assert.True(t, g.Accept(positionEvent(uuid.New(), base.Add(-time.Hour), 1)))

	g.Forget(missionID)
	assert.True(t, g.Accept(older))
}
