package domain

import (
	"testing"
	"time"

	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

var filterNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func schedule(id string, origin, destination string, depHours int, status models.TripStatus, seats int) models.TripSchedule {
	dep := filterNow.Add(time.Duration(depHours) * time.Hour)
	return models.TripSchedule{
		ID:                id,
		Origin:            origin,
		Destination:       destination,
		DepartureDateTime: dep,
		ArrivalDateTime:   dep.Add(6 * time.Hour),
		Price:             7500,
		VehicleType:       "Luxury Bus",
		Operator:          "Arewa Motors",
		AvailableSeats:    seats,
		TotalSeats:        40,
		Status:            status,
	}
}

func TestFilterBookableExcludesDepartedAndPast(t *testing.T) {
	schedules := []models.TripSchedule{
		schedule("KA101", "Kano", "Abuja", 24, models.StatusAvailable, 25),
		schedule("KA901", "Kano", "Abuja", -2, models.StatusAvailable, 10),
		schedule("KA902", "Kano", "Abuja", 48, models.StatusDeparted, 10),
		schedule("KA903", "Kano", "Abuja", 48, models.StatusCancelled, 10),
		schedule("KKD201", "Kano", "Kaduna", 20, models.StatusAvailable, 10),
	}

	got := FilterBookable(schedules, "Kano", "Abuja", filterNow)
	if len(got) != 1 {
		t.Fatalf("expected exactly one bookable schedule, got %d", len(got))
	}
	if got[0].ID != "KA101" {
		t.Fatalf("expected KA101, got %s", got[0].ID)
	}
}

func TestFilterBookableOrdersByDepartureAscending(t *testing.T) {
	schedules := []models.TripSchedule{
		schedule("KA104", "Kano", "Abuja", 72, models.StatusAvailable, 12),
		schedule("KA101", "Kano", "Abuja", 24, models.StatusAvailable, 25),
		schedule("KA103", "Kano", "Abuja", 48, models.StatusAvailable, 5),
	}

	got := FilterBookable(schedules, "Kano", "Abuja", filterNow)
	if len(got) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].DepartureDateTime.Before(got[i-1].DepartureDateTime) {
			t.Fatalf("result not sorted ascending at index %d: %s before %s",
				i, got[i].ID, got[i-1].ID)
		}
	}
	if got[0].ID != "KA101" || got[2].ID != "KA104" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestFilterBookableKeepsFullSchedules(t *testing.T) {
	// Full is not terminal: the result still lists the trip (greyed out in
	// the client); only Departed/Cancelled drop out entirely.
	schedules := []models.TripSchedule{
		schedule("AK102", "Abuja", "Kano", 26, models.StatusFull, 0),
	}
	got := FilterBookable(schedules, "Abuja", "Kano", filterNow)
	if len(got) != 1 {
		t.Fatalf("expected full schedule to remain listed, got %d results", len(got))
	}
	if got[0].Bookable() {
		t.Fatalf("full schedule must not report as bookable")
	}
}

func TestFilterBookableEmptySelectors(t *testing.T) {
	schedules := []models.TripSchedule{
		schedule("KA101", "Kano", "Abuja", 24, models.StatusAvailable, 25),
	}

	if got := FilterBookable(schedules, "", "Abuja", filterNow); len(got) != 0 {
		t.Fatalf("expected empty result for unset origin, got %d", len(got))
	}
	if got := FilterBookable(schedules, "Kano", "", filterNow); len(got) != 0 {
		t.Fatalf("expected empty result for unset destination, got %d", len(got))
	}
	if got := FilterBookable(nil, "Kano", "Abuja", filterNow); len(got) != 0 {
		t.Fatalf("expected empty result for empty catalog, got %d", len(got))
	}
}

func TestAvailableOriginsExcludesDestination(t *testing.T) {
	cities := []string{"Kano", "Kaduna", "Abuja", "Lagos"}

	origins := AvailableOrigins(cities, "Abuja")
	for _, city := range origins {
		if city == "Abuja" {
			t.Fatalf("origins must not contain the selected destination")
		}
	}
	if len(origins) != 3 {
		t.Fatalf("expected 3 origins, got %d", len(origins))
	}

	destinations := AvailableDestinations(cities, "Kano")
	for _, city := range destinations {
		if city == "Kano" {
			t.Fatalf("destinations must not contain the selected origin")
		}
	}
	if len(destinations) != 3 {
		t.Fatalf("expected 3 destinations, got %d", len(destinations))
	}

	// No selection excludes nothing.
	if got := AvailableOrigins(cities, ""); len(got) != 4 {
		t.Fatalf("expected all cities when nothing selected, got %d", len(got))
	}
}
