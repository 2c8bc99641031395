package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

// BookingRepository is the booking store: an append-only log of confirmed
// bookings. Each row carries the full schedule snapshot taken at booking
// time, so a booking survives later changes to (or cancellation of) the
// schedule it was made against. No update or delete is exposed.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `booking_id, passenger_name, seat_number, booking_date,
       trip_id, trip_origin, trip_destination, trip_departure_datetime, trip_arrival_datetime,
       trip_price, trip_vehicle_type, trip_operator, trip_available_seats, trip_total_seats, trip_status`

func scanBooking(row interface{ Scan(dest ...any) error }) (models.BookedTrip, error) {
	var b models.BookedTrip
	var status string
	err := row.Scan(
		&b.BookingID,
		&b.PassengerName,
		&b.SeatNumber,
		&b.BookingDate,
		&b.TripDetails.ID,
		&b.TripDetails.Origin,
		&b.TripDetails.Destination,
		&b.TripDetails.DepartureDateTime,
		&b.TripDetails.ArrivalDateTime,
		&b.TripDetails.Price,
		&b.TripDetails.VehicleType,
		&b.TripDetails.Operator,
		&b.TripDetails.AvailableSeats,
		&b.TripDetails.TotalSeats,
		&status,
	)
	if err != nil {
		return models.BookedTrip{}, err
	}
	b.TripDetails.Status = models.TripStatus(status)
	b.BookingDate = b.BookingDate.UTC()
	b.TripDetails.DepartureDateTime = b.TripDetails.DepartureDateTime.UTC()
	b.TripDetails.ArrivalDateTime = b.TripDetails.ArrivalDateTime.UTC()
	return b, nil
}

// Append stores a new booking record. A storage failure surfaces as
// PersistenceError and never silently drops the record; by the time Append
// runs the seat is already committed, so callers must treat this error as
// partial success, not as a failed booking.
func (r BookingRepository) Append(b models.BookedTrip) error {
	_, err := r.db().Exec(`
		INSERT INTO booked_trips
			(booking_id, passenger_name, seat_number, booking_date,
			 trip_id, trip_origin, trip_destination, trip_departure_datetime, trip_arrival_datetime,
			 trip_price, trip_vehicle_type, trip_operator, trip_available_seats, trip_total_seats, trip_status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		b.BookingID,
		b.PassengerName,
		b.SeatNumber,
		b.BookingDate.UTC(),
		b.TripDetails.ID,
		b.TripDetails.Origin,
		b.TripDetails.Destination,
		b.TripDetails.DepartureDateTime.UTC(),
		b.TripDetails.ArrivalDateTime.UTC(),
		b.TripDetails.Price,
		b.TripDetails.VehicleType,
		b.TripDetails.Operator,
		b.TripDetails.AvailableSeats,
		b.TripDetails.TotalSeats,
		string(b.TripDetails.Status),
	)
	if err != nil {
		return domain.PersistenceError{Op: "append booking", Err: err}
	}
	return nil
}

// ListAll returns every booking, most recent first. This ordering is a
// display contract for the bookings page, distinct from the ascending
// departure ordering the route filter uses.
func (r BookingRepository) ListAll() ([]models.BookedTrip, error) {
	rows, err := r.db().Query(`
		SELECT ` + bookingColumns + `
		FROM booked_trips
		ORDER BY booking_date DESC, booking_id DESC
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	defer rows.Close()

	out := make([]models.BookedTrip, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, domain.InternalError{Msg: "failed to read booking row", Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) FindByBookingID(bookingID string) (models.BookedTrip, error) {
	row := r.db().QueryRow(`
		SELECT `+bookingColumns+`
		FROM booked_trips
		WHERE booking_id = ?
	`, bookingID)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookedTrip{}, domain.NotFoundError{Resource: "booking", ID: bookingID, Err: err}
		}
		return models.BookedTrip{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	return b, nil
}
