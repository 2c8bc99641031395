package services

import (
	"testing"
	"time"

	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

func TestDocsServiceGenerateETicket(t *testing.T) {
	loader := func(id string) (models.BookedTrip, error) {
		dep := time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)
		return models.BookedTrip{
			TripDetails: models.TripSchedule{
				ID:                "KA101",
				Origin:            "Kano",
				Destination:       "Abuja",
				DepartureDateTime: dep,
				ArrivalDateTime:   dep.Add(6 * time.Hour),
				Price:             7500,
				VehicleType:       "Luxury Bus",
				Operator:          "Arewa Motors",
				AvailableSeats:    24,
				TotalSeats:        40,
				Status:            models.StatusAvailable,
			},
			BookingID:     id,
			PassengerName: "Ada",
			SeatNumber:    "Seat 16",
			BookingDate:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket("TRN-1-KA1")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
}
