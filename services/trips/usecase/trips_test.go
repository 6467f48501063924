package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchFixture struct {
	uc       *tripUC
	repo     *mocks.MockTripRepo
	geocoder *mocks.MockTripGW
	clock    time.Time
}

func newSearchFixture(t *testing.T) *searchFixture {
	ctrl := gomock.NewController(t)
	f := &searchFixture{
		repo:     mocks.NewMockTripRepo(ctrl),
		geocoder: mocks.NewMockTripGW(ctrl),
		clock:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	cfg := &models.Config{Matcher: models.MatcherConfig{RadiusKm: 60, CandidateLimit: 50}}
	uc := NewTripUC(cfg, f.repo, f.geocoder).(*tripUC)
	uc.now = func() time.Time { return f.clock }
	f.uc = uc
	return f
}

func TestSearch_GeocodedAnchor(t *testing.T) {
	f := newSearchFixture(t)
	user := uuid.New()

	near := trip("Paris", &models.Coordinates{Latitude: 48.86, Longitude: 2.35}, "Lyon", &models.Coordinates{Latitude: 45.75, Longitude: 4.85})
	fromMarseille := trip("Marseille", marseille, "Lyon", lyon)

	f.geocoder.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	f.geocoder.EXPECT().Geocode(gomock.Any(), "Lyon").Return(lyon, nil)
	f.repo.EXPECT().ListUpcomingTrips(gomock.Any(), f.clock, 50).
		Return([]*models.Trip{fromMarseille, near}, nil)

	result, err := f.uc.Search(context.Background(), user, models.TripSearchRequest{Origin: "Paris", Destination: "Lyon"})

	require.NoError(t, err)
	assert.Equal(t, models.MatchModeGeo, result.Mode)
	assert.Equal(t, []uuid.UUID{near.ID}, ids(result.Matches))
	assert.Equal(t, 0, f.uc.sessions.active())
}

func TestSearch_GeocodingUnavailable(t *testing.T) {
	f := newSearchFixture(t)

	a := trip("Paris", paris, "Lyon", lyon)
	b := trip("Marseille", marseille, "Nice", nil)
	c := trip("Lyon", lyon, "Grenoble", nil)
	d := trip("Lille", nil, "Paris", paris)
	candidates := []*models.Trip{a, b, c, d}

	f.geocoder.EXPECT().Geocode(gomock.Any(), "Paris").Return(nil, models.ErrGeocodeUnavailable)
	f.repo.EXPECT().ListUpcomingTrips(gomock.Any(), gomock.Any(), gomock.Any()).Return(candidates, nil)

	result, err := f.uc.Search(context.Background(), uuid.New(), models.TripSearchRequest{Origin: "Paris", Destination: "Lyon"})

	require.NoError(t, err)
	assert.Equal(t, models.MatchModeText, result.Mode)
	assert.Equal(t, ids(TextMatch(Anchor{Origin: "Paris", Destination: "Lyon"}, candidates)), ids(result.Matches))
	assert.Equal(t, []uuid.UUID{a.ID, c.ID, d.ID}, ids(result.Matches))
}

func TestSearch_DestinationNotFoundSkipsGeoPass(t *testing.T) {
	f := newSearchFixture(t)
	// would be kept by the geospatial pass on the origin leg alone
	nearParis := trip("Orly", &models.Coordinates{Latitude: 48.7262, Longitude: 2.3652}, "Nantes", nil)

	f.geocoder.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	f.geocoder.EXPECT().Geocode(gomock.Any(), "Atlantis").Return(nil, models.ErrGeocodeNotFound)
	f.repo.EXPECT().ListUpcomingTrips(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*models.Trip{nearParis}, nil)

	result, err := f.uc.Search(context.Background(), uuid.New(), models.TripSearchRequest{Origin: "Paris", Destination: "Atlantis"})

	require.NoError(t, err)
	assert.Equal(t, models.MatchModeText, result.Mode)
	assert.Empty(t, result.Matches)
}

func TestSearch_ProvidedCoordinatesAreNotGeocoded(t *testing.T) {
	f := newSearchFixture(t)
	after := f.clock.Add(48 * time.Hour)
	near := trip("Paris", paris, "Lyon", lyon)

	f.repo.EXPECT().ListUpcomingTrips(gomock.Any(), after, 50).Return([]*models.Trip{near}, nil)

	result, err := f.uc.Search(context.Background(), uuid.New(), models.TripSearchRequest{
		Origin:            "Paris",
		OriginCoords:      paris,
		DestinationCoords: lyon,
		DepartureAfter:    &after,
	})

	require.NoError(t, err)
	assert.Equal(t, models.MatchModeGeo, result.Mode)
	assert.Len(t, result.Matches, 1)
}

func TestSearch_StoreError(t *testing.T) {
	f := newSearchFixture(t)
	f.repo.EXPECT().ListUpcomingTrips(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := f.uc.Search(context.Background(), uuid.New(), models.TripSearchRequest{})

	assert.EqualError(t, err, "db down")
}

func TestSearch_NewerSearchSupersedesOlder(t *testing.T) {
	f := newSearchFixture(t)
	user := uuid.New()
	started := make(chan struct{})

	f.geocoder.EXPECT().Geocode(gomock.Any(), "Pari").
		DoAndReturn(func(ctx context.Context, _ string) (*models.Coordinates, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		})
	f.geocoder.EXPECT().Geocode(gomock.Any(), "Paris").Return(paris, nil)
	f.repo.EXPECT().ListUpcomingTrips(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.Trip{trip("Paris", paris, "", nil)}, nil)

	type outcome struct {
		result *models.TripSearchResult
		err    error
	}
	first := make(chan outcome, 1)
	go func() {
		r, err := f.uc.Search(context.Background(), user, models.TripSearchRequest{Origin: "Pari"})
		first <- outcome{r, err}
	}()
	<-started

	result, err := f.uc.Search(context.Background(), user, models.TripSearchRequest{Origin: "Paris"})
	require.NoError(t, err)
	assert.Len(t, result.Matches, 1)

	select {
	case o := <-first:
		assert.Nil(t, o.result)
		assert.ErrorIs(t, o.err, models.ErrStaleSearch)
	case <-time.After(2 * time.Second):
		t.Fatal("superseded search did not return")
	}
	assert.Equal(t, 0, f.uc.sessions.active())
}

func TestSearchSessions_PerUser(t *testing.T) {
	sessions := newSearchSessions()
	a, b := uuid.New(), uuid.New()

	ctxA, seqA, releaseA := sessions.begin(context.Background(), a)
	_, seqB, releaseB := sessions.begin(context.Background(), b)
	defer releaseB()

	assert.NoError(t, ctxA.Err())
	assert.True(t, sessions.isLatest(a, seqA))
	assert.True(t, sessions.isLatest(b, seqB))

	_, seqA2, releaseA2 := sessions.begin(context.Background(), a)
	assert.ErrorIs(t, ctxA.Err(), context.Canceled)
	assert.False(t, sessions.isLatest(a, seqA))
	assert.True(t, sessions.isLatest(a, seqA2))

	releaseA2()
	releaseA()
	assert.False(t, sessions.isLatest(a, seqA))
	assert.Equal(t, 1, sessions.active())
}

func TestJoinTrip(t *testing.T) {
	tripID := uuid.New()
	user := uuid.New()

	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "joined"},
		{name: "full", repoErr: models.ErrTripFull},
		{name: "own trip", repoErr: models.ErrForbidden},
		{name: "unknown", repoErr: models.ErrTripNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSearchFixture(t)
			if tt.repoErr != nil {
				f.repo.EXPECT().JoinTrip(gomock.Any(), tripID, user).Return(nil, tt.repoErr)
			} else {
				f.repo.EXPECT().JoinTrip(gomock.Any(), tripID, user).
					Return(&models.Trip{ID: tripID, SeatCount: 2, Participants: []uuid.UUID{user}}, nil)
			}

			got, err := f.uc.JoinTrip(context.Background(), tripID, user)

			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, got.SeatsLeft())
		})
	}
}

func TestGetTrip(t *testing.T) {
	f := newSearchFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetTrip(gomock.Any(), id).Return(&models.Trip{ID: id}, nil)

	got, err := f.uc.GetTrip(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}
