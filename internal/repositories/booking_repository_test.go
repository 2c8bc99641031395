package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

var bookingCols = []string{
	"booking_id", "passenger_name", "seat_number", "booking_date",
	"trip_id", "trip_origin", "trip_destination", "trip_departure_datetime", "trip_arrival_datetime",
	"trip_price", "trip_vehicle_type", "trip_operator", "trip_available_seats", "trip_total_seats", "trip_status",
}

func bookingRow(rows *sqlmock.Rows, bookingID string, booked time.Time) *sqlmock.Rows {
	dep := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
	return rows.AddRow(
		bookingID, "Ada", "Seat 16", booked,
		"KA101", "Kano", "Abuja", dep, dep.Add(6*time.Hour),
		int64(7500), "Luxury Bus", "Arewa Motors", 24, 40, "Available",
	)
}

func TestBookingRepositoryAppendPersistenceError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO booked_trips").
		WillReturnError(errors.New("storage full"))

	repo := BookingRepository{DB: db}
	err = repo.Append(models.BookedTrip{
		BookingID:     "TRN-1-KA1",
		PassengerName: "Ada",
		SeatNumber:    "Seat 16",
		BookingDate:   time.Now().UTC(),
	})
	if !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestBookingRepositoryListAllMostRecentFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	later := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	earlier := later.Add(-1 * time.Hour)
	rows := sqlmock.NewRows(bookingCols)
	rows = bookingRow(rows, "TRN-2-KA1", later)
	rows = bookingRow(rows, "TRN-1-KA1", earlier)

	mock.ExpectQuery("FROM booked_trips ORDER BY booking_date DESC").
		WillReturnRows(rows)

	repo := BookingRepository{DB: db}
	got, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
	if got[0].BookingID != "TRN-2-KA1" || got[1].BookingID != "TRN-1-KA1" {
		t.Fatalf("unexpected order: %s, %s", got[0].BookingID, got[1].BookingID)
	}
	if got[0].BookingDate.Before(got[1].BookingDate) {
		t.Fatalf("bookings not sorted most recent first")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingRepositoryFindByBookingID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	booked := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM booked_trips").
		WithArgs("TRN-1-KA1").
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), "TRN-1-KA1", booked))

	repo := BookingRepository{DB: db}
	got, err := repo.FindByBookingID("TRN-1-KA1")
	if err != nil {
		t.Fatalf("FindByBookingID returned error: %v", err)
	}
	if got.BookingID != "TRN-1-KA1" || got.TripDetails.ID != "KA101" {
		t.Fatalf("unexpected booking: %+v", got)
	}
}

func TestBookingRepositoryFindByBookingIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM booked_trips").
		WithArgs("TRN-MISSING").
		WillReturnRows(sqlmock.NewRows(bookingCols))

	repo := BookingRepository{DB: db}
	_, err = repo.FindByBookingID("TRN-MISSING")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
