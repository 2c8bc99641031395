package services

import (
	"database/sql"
	"fmt"
	"time"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
	"github.com/Haseem12/ArewaRide/internal/repositories"
	"github.com/Haseem12/ArewaRide/internal/utils"
)

// ReservationService turns a booking intent into either a confirmed
// BookedTrip or a rejection. It is the only caller of the catalog's seat
// decrement.
type ReservationService struct {
	ScheduleRepo repositories.ScheduleRepository
	BookingRepo  repositories.BookingRepository
	DB           *sql.DB
	RequestID    string
	Now          func() time.Time
}

func (s ReservationService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ReservationService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.db()}
}

func (s ReservationService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s ReservationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Book claims one seat on the schedule for the named passenger.
//
// The availability pre-check exists to give the caller a precise rejection
// (full vs departed vs cancelled); the seat decrement itself is the atomic
// guard, so a stale pre-check surfaces as CapacityExhaustedError rather than
// negative inventory. A PersistenceError from the final append is returned
// together with the constructed booking: the seat is already consumed and is
// not refunded, only the receipt may be missing.
func (s ReservationService) Book(scheduleID, passengerName string) (models.BookedTrip, error) {
	passengerName = utils.NormalizeSpace(passengerName)
	if passengerName == "" {
		return models.BookedTrip{}, domain.ValidationError{Field: "passenger_name", Msg: "must not be empty"}
	}
	if utils.TrimOrEmpty(scheduleID) == "" {
		return models.BookedTrip{}, domain.ValidationError{Field: "schedule_id", Msg: "must not be empty"}
	}

	schedule, err := s.schedules().GetByID(scheduleID)
	if err != nil {
		return models.BookedTrip{}, err
	}

	switch {
	case schedule.Status == models.StatusDeparted:
		return models.BookedTrip{}, domain.UnavailableError{ScheduleID: scheduleID, Reason: domain.ReasonDeparted}
	case schedule.Status == models.StatusCancelled:
		return models.BookedTrip{}, domain.UnavailableError{ScheduleID: scheduleID, Reason: domain.ReasonCancelled}
	case schedule.Status == models.StatusFull || schedule.AvailableSeats <= 0:
		return models.BookedTrip{}, domain.UnavailableError{ScheduleID: scheduleID, Reason: domain.ReasonFull}
	}

	updated, err := s.schedules().DecrementSeat(scheduleID)
	if err != nil {
		return models.BookedTrip{}, err
	}

	now := s.now()
	booking := models.BookedTrip{
		TripDetails:   updated,
		BookingID:     newBookingID(now, updated.ID),
		PassengerName: passengerName,
		SeatNumber:    assignSeatNumber(updated),
		BookingDate:   now,
	}

	if err := s.bookings().Append(booking); err != nil {
		utils.LogEvent(s.RequestID, "reservation", "append_failed",
			fmt.Sprintf("booking_id=%s schedule_id=%s", booking.BookingID, scheduleID))
		return booking, err
	}

	utils.LogEvent(s.RequestID, "reservation", "booked",
		fmt.Sprintf("booking_id=%s schedule_id=%s seats_left=%d", booking.BookingID, scheduleID, updated.AvailableSeats))
	return booking, nil
}

// ListBookings returns every stored booking, most recent first.
func (s ReservationService) ListBookings() ([]models.BookedTrip, error) {
	return s.bookings().ListAll()
}

// FindBooking looks up a single booking by its id.
func (s ReservationService) FindBooking(bookingID string) (models.BookedTrip, error) {
	if utils.TrimOrEmpty(bookingID) == "" {
		return models.BookedTrip{}, domain.ValidationError{Field: "booking_id", Msg: "must not be empty"}
	}
	return s.bookings().FindByBookingID(bookingID)
}

// newBookingID derives the booking id from booking time plus a schedule id
// fragment, so ids order unambiguously by creation time.
func newBookingID(now time.Time, scheduleID string) string {
	frag := scheduleID
	if len(frag) > 3 {
		frag = frag[:3]
	}
	return fmt.Sprintf("TRN-%d-%s", now.UnixMilli(), frag)
}

// assignSeatNumber labels the seat from the unallocated pool: the Nth seat
// claimed gets label N. The label is display-only; overbooking prevention
// rests entirely on the seat decrement.
func assignSeatNumber(s models.TripSchedule) string {
	return fmt.Sprintf("Seat %d", s.TotalSeats-s.AvailableSeats)
}
