package models

import "time"

// BookedTrip is the durable receipt for one claimed seat. TripDetails is a
// snapshot of the schedule taken after the seat decrement, not a live
// reference: the catalog entry keeps changing after the booking.
type BookedTrip struct {
	TripDetails   TripSchedule `json:"tripDetails"`
	BookingID     string       `json:"bookingId"`
	PassengerName string       `json:"passengerName"`
	SeatNumber    string       `json:"seatNumber"`
	BookingDate   time.Time    `json:"bookingDate"`
}
