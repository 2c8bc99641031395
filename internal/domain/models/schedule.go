package models

import "time"

// TripStatus is the operational state of a scheduled trip. Available and Full
// flip back and forth with seat inventory; Departed and Cancelled are terminal
// and exclude the schedule from booking regardless of seat count.
type TripStatus string

const (
	StatusAvailable TripStatus = "Available"
	StatusFull      TripStatus = "Full"
	StatusDeparted  TripStatus = "Departed"
	StatusCancelled TripStatus = "Cancelled"
)

// TripSchedule is a single departure instance of a route with fixed capacity.
// AvailableSeats is owned by the schedule catalog; nothing else mutates it.
type TripSchedule struct {
	ID                string     `json:"id"`
	Origin            string     `json:"origin"`
	Destination       string     `json:"destination"`
	DepartureDateTime time.Time  `json:"departureDateTime"`
	ArrivalDateTime   time.Time  `json:"arrivalDateTime"`
	Price             int64      `json:"price"`
	VehicleType       string     `json:"vehicleType"`
	Operator          string     `json:"operator"`
	AvailableSeats    int        `json:"availableSeats"`
	TotalSeats        int        `json:"totalSeats"`
	Status            TripStatus `json:"status"`
}

// Terminal reports whether the schedule can never take another booking.
func (s TripSchedule) Terminal() bool {
	return s.Status == StatusDeparted || s.Status == StatusCancelled
}

// Bookable reports whether a booking attempt against this schedule could
// succeed right now.
func (s TripSchedule) Bookable() bool {
	return !s.Terminal() && s.Status != StatusFull && s.AvailableSeats > 0
}
