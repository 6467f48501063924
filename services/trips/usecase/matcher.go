package usecase

import (
	"sort"
	"strings"

	"github.com/piresc/convoy/internal/pkg/models"
	"github.com/piresc/convoy/internal/utils"
)

// DefaultRadiusKm is used when no radius is configured
const DefaultRadiusKm = 60.0

// Anchor is the resolved search the candidates are ranked against
type Anchor struct {
	Origin            string
	OriginCoords      *models.Coordinates
	Destination       string
	DestinationCoords *models.Coordinates
}

// HasCoordinates reports whether any leg of the anchor can be evaluated
// geospatially
func (a Anchor) HasCoordinates() bool {
	return a.OriginCoords != nil || a.DestinationCoords != nil
}

func legDistance(anchor, point *models.Coordinates) (float64, bool) {
	if anchor == nil || point == nil {
		return 0, false
	}
	return utils.HaversineKm(
		utils.GeoPoint{Latitude: anchor.Latitude, Longitude: anchor.Longitude},
		utils.GeoPoint{Latitude: point.Latitude, Longitude: point.Longitude},
	), true
}

// Rank keeps the candidates whose every evaluable leg lies within radiusKm
// of the anchor and orders them by summed leg distance. Candidates with no
// evaluable leg are dropped.
func Rank(anchor Anchor, candidates []*models.Trip, radiusKm float64) []models.TripMatch {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	kept := make([]models.TripMatch, 0, len(candidates))
	for _, trip := range candidates {
		match := models.TripMatch{Trip: trip}
		evaluated := 0
		within := true

		if d, ok := legDistance(anchor.OriginCoords, trip.Origin()); ok {
			evaluated++
			within = within && d <= radiusKm
			match.OriginDistanceKm = &d
			match.TotalDistanceKm += d
		}
		if d, ok := legDistance(anchor.DestinationCoords, trip.Destination()); ok {
			evaluated++
			within = within && d <= radiusKm
			match.DestinationDistanceKm = &d
			match.TotalDistanceKm += d
		}

		if evaluated > 0 && within {
			kept = append(kept, match)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].TotalDistanceKm < kept[j].TotalDistanceKm
	})
	return kept
}

// TextMatch keeps, in input order, the candidates whose origin or
// destination city contains any non-empty query term, ignoring case. With
// no terms every candidate matches.
func TextMatch(anchor Anchor, candidates []*models.Trip) []models.TripMatch {
	var terms []string
	for _, q := range []string{anchor.Origin, anchor.Destination} {
		if q = strings.ToLower(strings.TrimSpace(q)); q != "" {
			terms = append(terms, q)
		}
	}

	matches := make([]models.TripMatch, 0, len(candidates))
	for _, trip := range candidates {
		if len(terms) == 0 || containsAny(trip.OriginCity, terms) || containsAny(trip.DestinationCity, terms) {
			matches = append(matches, models.TripMatch{Trip: trip})
		}
	}
	return matches
}

func containsAny(city string, terms []string) bool {
	city = strings.ToLower(city)
	for _, t := range terms {
		if strings.Contains(city, t) {
			return true
		}
	}
	return false
}

// Match runs the geospatial pass when the anchor has coordinates and falls
// back to text matching when it has none or the pass keeps nothing
func Match(anchor Anchor, candidates []*models.Trip, radiusKm float64) *models.TripSearchResult {
	if anchor.HasCoordinates() {
		if ranked := Rank(anchor, candidates, radiusKm); len(ranked) > 0 {
			return &models.TripSearchResult{Mode: models.MatchModeGeo, Matches: ranked}
		}
	}
	return &models.TripSearchResult{Mode: models.MatchModeText, Matches: TextMatch(anchor, candidates)}
}
