package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestTripScheduleJSONRoundTrip(t *testing.T) {
	dep := time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC)
	original := TripSchedule{
		ID:                "KA101",
		Origin:            "Kano",
		Destination:       "Abuja",
		DepartureDateTime: dep,
		ArrivalDateTime:   dep.Add(6 * time.Hour),
		Price:             7500,
		VehicleType:       "Luxury Bus",
		Operator:          "Arewa Motors",
		AvailableSeats:    25,
		TotalSeats:        40,
		Status:            StatusAvailable,
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var decoded TripSchedule
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n  original: %+v\n  decoded:  %+v", original, decoded)
	}
}

func TestBookedTripJSONRoundTrip(t *testing.T) {
	dep := time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC)
	original := BookedTrip{
		TripDetails: TripSchedule{
			ID:                "KA103",
			Origin:            "Kano",
			Destination:       "Abuja",
			DepartureDateTime: dep,
			ArrivalDateTime:   dep.Add(6 * time.Hour),
			Price:             8000,
			VehicleType:       "Sienna",
			Operator:          "Northern Express",
			AvailableSeats:    4,
			TotalSeats:        7,
			Status:            StatusAvailable,
		},
		BookingID:     "TRN-1767945600000-KA1",
		PassengerName: "Ada",
		SeatNumber:    "Seat 3",
		BookingDate:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var decoded BookedTrip
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n  original: %+v\n  decoded:  %+v", original, decoded)
	}
}

func TestBookable(t *testing.T) {
	cases := []struct {
		name     string
		status   TripStatus
		seats    int
		bookable bool
	}{
		{"available with seats", StatusAvailable, 5, true},
		{"available without seats", StatusAvailable, 0, false},
		{"full", StatusFull, 0, false},
		{"departed with seats", StatusDeparted, 10, false},
		{"cancelled with seats", StatusCancelled, 10, false},
	}
	for _, tc := range cases {
		s := TripSchedule{Status: tc.status, AvailableSeats: tc.seats, TotalSeats: 40}
		if got := s.Bookable(); got != tc.bookable {
			t.Errorf("%s: Bookable() = %v, want %v", tc.name, got, tc.bookable)
		}
	}
}
