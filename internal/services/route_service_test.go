package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/repositories"
)

func routeServiceFor(t *testing.T) (RouteService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := RouteService{
		ScheduleRepo: repositories.ScheduleRepository{DB: db},
		Now:          func() time.Time { return bookNow },
	}
	return svc, mock, func() { db.Close() }
}

func TestFindSchedulesFiltersPastAndDeparted(t *testing.T) {
	svc, mock, cleanup := routeServiceFor(t)
	defer cleanup()

	future := bookNow.Add(24 * time.Hour)
	past := bookNow.Add(-2 * time.Hour)
	rows := sqlmock.NewRows(scheduleCols).
		AddRow("KA900", "Kano", "Abuja", past, past.Add(6*time.Hour),
			int64(7000), "Minibus", "Arewa Motors", 10, 18, "Available").
		AddRow("KA101", "Kano", "Abuja", future, future.Add(6*time.Hour),
			int64(7500), "Luxury Bus", "Arewa Motors", 25, 40, "Available").
		AddRow("KA901", "Kano", "Abuja", future.Add(time.Hour), future.Add(7*time.Hour),
			int64(7500), "Luxury Bus", "Arewa Motors", 10, 40, "Departed")

	mock.ExpectQuery("FROM trip_schedules").
		WithArgs("Kano", "Abuja").
		WillReturnRows(rows)

	got, err := svc.FindSchedules("Kano", "Abuja")
	if err != nil {
		t.Fatalf("FindSchedules returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "KA101" {
		t.Fatalf("expected exactly KA101, got %+v", got)
	}
}

func TestFindSchedulesEmptySelectors(t *testing.T) {
	svc, mock, cleanup := routeServiceFor(t)
	defer cleanup()

	got, err := svc.FindSchedules("", "Abuja")
	if err != nil {
		t.Fatalf("FindSchedules returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result for unset origin, got %d", len(got))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unset selectors must not hit the catalog: %v", err)
	}
}

func TestFindSchedulesSameCityRejected(t *testing.T) {
	svc, mock, cleanup := routeServiceFor(t)
	defer cleanup()

	_, err := svc.FindSchedules("Kano", "Kano")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("validation must not hit the catalog: %v", err)
	}
}

func TestAvailableOriginsExcludeSelectedDestination(t *testing.T) {
	svc, mock, cleanup := routeServiceFor(t)
	defer cleanup()

	mock.ExpectQuery("SELECT origin AS city FROM trip_schedules").
		WillReturnRows(sqlmock.NewRows([]string{"city"}).
			AddRow("Abuja").AddRow("Kaduna").AddRow("Kano").AddRow("Lagos"))

	origins, err := svc.AvailableOrigins("Abuja")
	if err != nil {
		t.Fatalf("AvailableOrigins returned error: %v", err)
	}
	if len(origins) != 3 {
		t.Fatalf("expected 3 origins, got %d", len(origins))
	}
	for _, city := range origins {
		if city == "Abuja" {
			t.Fatalf("origins must not contain the selected destination")
		}
	}
}
