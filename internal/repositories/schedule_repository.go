package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

// ScheduleRepository is the schedule catalog: the authoritative set of trip
// schedules for the deployment. It is the only component allowed to mutate
// seat counts, through DecrementSeat.
type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleColumns = `id, origin, destination, departure_datetime, arrival_datetime,
       price, vehicle_type, operator, available_seats, total_seats, status`

func scanSchedule(row interface{ Scan(dest ...any) error }) (models.TripSchedule, error) {
	var s models.TripSchedule
	var status string
	err := row.Scan(
		&s.ID,
		&s.Origin,
		&s.Destination,
		&s.DepartureDateTime,
		&s.ArrivalDateTime,
		&s.Price,
		&s.VehicleType,
		&s.Operator,
		&s.AvailableSeats,
		&s.TotalSeats,
		&status,
	)
	if err != nil {
		return models.TripSchedule{}, err
	}
	s.Status = models.TripStatus(status)
	s.DepartureDateTime = s.DepartureDateTime.UTC()
	s.ArrivalDateTime = s.ArrivalDateTime.UTC()
	return s, nil
}

func (r ScheduleRepository) GetByID(id string) (models.TripSchedule, error) {
	row := r.db().QueryRow(`
		SELECT `+scheduleColumns+`
		FROM trip_schedules
		WHERE id = ?
	`, id)

	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TripSchedule{}, domain.NotFoundError{Resource: "schedule", ID: id, Err: err}
		}
		return models.TripSchedule{}, domain.InternalError{Msg: "failed to load schedule", Err: err}
	}
	return s, nil
}

// ListByRoute returns every catalog entry for the origin/destination pair,
// ordered by departure time. Status and departure-time filtering is left to
// the route filter so it can apply "now" consistently.
func (r ScheduleRepository) ListByRoute(origin, destination string) ([]models.TripSchedule, error) {
	rows, err := r.db().Query(`
		SELECT `+scheduleColumns+`
		FROM trip_schedules
		WHERE origin = ? AND destination = ?
		ORDER BY departure_datetime ASC
	`, origin, destination)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list schedules", Err: err}
	}
	defer rows.Close()

	out := make([]models.TripSchedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to read schedule row", Err: err}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListCities returns the distinct set of cities known to the catalog,
// whether they appear as origin or destination.
func (r ScheduleRepository) ListCities() ([]string, error) {
	rows, err := r.db().Query(`
		SELECT origin AS city FROM trip_schedules
		UNION
		SELECT destination FROM trip_schedules
		ORDER BY city ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list cities", Err: err}
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return out, domain.InternalError{Msg: "failed to read city row", Err: err}
		}
		out = append(out, city)
	}
	return out, rows.Err()
}

// DecrementSeat claims exactly one seat. The conditional UPDATE is the
// compare-and-decrement: two concurrent bookings can never drive the count
// negative because the WHERE clause rejects the loser. When the decrement
// lands on zero the status flips to Full in the same statement.
func (r ScheduleRepository) DecrementSeat(id string) (models.TripSchedule, error) {
	res, err := r.db().Exec(`
		UPDATE trip_schedules
		SET status = IF(available_seats - 1 <= 0, 'Full', status),
		    available_seats = available_seats - 1
		WHERE id = ? AND available_seats > 0
	`, id)
	if err != nil {
		return models.TripSchedule{}, domain.InternalError{Msg: "failed to decrement seat", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.TripSchedule{}, domain.InternalError{Msg: "failed to read decrement result", Err: err}
	}
	if affected == 0 {
		// Either the id is unknown or another booking emptied the seats.
		if _, getErr := r.GetByID(id); getErr != nil {
			return models.TripSchedule{}, getErr
		}
		return models.TripSchedule{}, domain.CapacityExhaustedError{ScheduleID: id}
	}

	return r.GetByID(id)
}

// Insert adds a catalog entry. Used by schema seeding; booking flows never
// create schedules.
func (r ScheduleRepository) Insert(s models.TripSchedule) error {
	_, err := r.db().Exec(`
		INSERT IGNORE INTO trip_schedules
			(id, origin, destination, departure_datetime, arrival_datetime,
			 price, vehicle_type, operator, available_seats, total_seats, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)
	`,
		s.ID,
		s.Origin,
		s.Destination,
		s.DepartureDateTime.UTC(),
		s.ArrivalDateTime.UTC(),
		s.Price,
		s.VehicleType,
		s.Operator,
		s.AvailableSeats,
		s.TotalSeats,
		string(s.Status),
	)
	if err != nil {
		return domain.InternalError{Msg: "failed to insert schedule", Err: err}
	}
	return nil
}
