package domain

import (
	"sort"
	"time"

	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

// AvailableOrigins returns every known city except the currently selected
// destination, so a city cannot sit on both sides of the route picker.
func AvailableOrigins(cities []string, excludingDestination string) []string {
	return citiesExcept(cities, excludingDestination)
}

// AvailableDestinations is the symmetric counterpart of AvailableOrigins.
func AvailableDestinations(cities []string, excludingOrigin string) []string {
	return citiesExcept(cities, excludingOrigin)
}

func citiesExcept(cities []string, excluded string) []string {
	out := make([]string, 0, len(cities))
	seen := map[string]bool{}
	for _, city := range cities {
		if city == "" || city == excluded || seen[city] {
			continue
		}
		seen[city] = true
		out = append(out, city)
	}
	return out
}

// FilterBookable selects the schedules a passenger can still book for the
// given route: exact origin/destination match, not departed or cancelled, and
// departing strictly after now. The result is ordered ascending by departure
// time; callers rely on that for "next available trip" display. An unset
// origin or destination yields an empty result, never an error.
func FilterBookable(schedules []models.TripSchedule, origin, destination string, now time.Time) []models.TripSchedule {
	out := make([]models.TripSchedule, 0, len(schedules))
	if origin == "" || destination == "" {
		return out
	}
	for _, s := range schedules {
		if s.Origin != origin || s.Destination != destination {
			continue
		}
		if s.Terminal() {
			continue
		}
		if !s.DepartureDateTime.After(now) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureDateTime.Before(out[j].DepartureDateTime)
	})
	return out
}
