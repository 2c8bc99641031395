package services

import (
	"database/sql"
	"time"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
	"github.com/Haseem12/ArewaRide/internal/repositories"
	"github.com/Haseem12/ArewaRide/internal/utils"
)

// RouteService answers the route picker: which cities can be chosen, and
// which schedules are bookable for a fixed origin/destination pair. It never
// mutates anything and recomputes on every call, because its inputs (current
// time, catalog state) change underneath it.
type RouteService struct {
	ScheduleRepo repositories.ScheduleRepository
	DB           *sql.DB
	Now          func() time.Time
}

func (s RouteService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	if s.DB != nil {
		return repositories.ScheduleRepository{DB: s.DB}
	}
	return repositories.ScheduleRepository{DB: intconfig.DB}
}

func (s RouteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Cities returns every city the catalog knows about.
func (s RouteService) Cities() ([]string, error) {
	return s.schedules().ListCities()
}

// AvailableOrigins lists origin choices given the current destination
// selection ("" for none).
func (s RouteService) AvailableOrigins(excludingDestination string) ([]string, error) {
	cities, err := s.Cities()
	if err != nil {
		return nil, err
	}
	return domain.AvailableOrigins(cities, utils.TrimOrEmpty(excludingDestination)), nil
}

// AvailableDestinations lists destination choices given the current origin
// selection ("" for none).
func (s RouteService) AvailableDestinations(excludingOrigin string) ([]string, error) {
	cities, err := s.Cities()
	if err != nil {
		return nil, err
	}
	return domain.AvailableDestinations(cities, utils.TrimOrEmpty(excludingOrigin)), nil
}

// FindSchedules returns the bookable schedules for the route, earliest
// departure first. Unset selectors yield an empty list; a route from a city
// to itself is a validation error.
func (s RouteService) FindSchedules(origin, destination string) ([]models.TripSchedule, error) {
	origin = utils.TrimOrEmpty(origin)
	destination = utils.TrimOrEmpty(destination)
	if origin == "" || destination == "" {
		return []models.TripSchedule{}, nil
	}
	if origin == destination {
		return nil, domain.ValidationError{Field: "destination", Msg: "must differ from origin"}
	}

	all, err := s.schedules().ListByRoute(origin, destination)
	if err != nil {
		return nil, err
	}
	return domain.FilterBookable(all, origin, destination, s.now()), nil
}
