package repositories

import (
	"database/sql"
	"fmt"
	"time"

	intdb "github.com/Haseem12/ArewaRide/internal/db"
	"github.com/Haseem12/ArewaRide/internal/domain/models"
)

// InitSchema creates the tables this service needs. Safe to run on every
// startup; existing tables are left alone.
func InitSchema(db *sql.DB) error {
	ddls := map[string]string{
		"trip_schedules": `CREATE TABLE IF NOT EXISTS trip_schedules (
			id VARCHAR(20) PRIMARY KEY,
			origin VARCHAR(100) NOT NULL,
			destination VARCHAR(100) NOT NULL,
			departure_datetime DATETIME NOT NULL,
			arrival_datetime DATETIME NOT NULL,
			price BIGINT NOT NULL DEFAULT 0,
			vehicle_type VARCHAR(100) NOT NULL DEFAULT '',
			operator VARCHAR(100) NOT NULL DEFAULT '',
			available_seats INT NOT NULL,
			total_seats INT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Available',
			KEY idx_route (origin, destination, departure_datetime)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		"booked_trips": `CREATE TABLE IF NOT EXISTS booked_trips (
			booking_id VARCHAR(64) PRIMARY KEY,
			passenger_name VARCHAR(255) NOT NULL,
			seat_number VARCHAR(50) NOT NULL,
			booking_date DATETIME NOT NULL,
			trip_id VARCHAR(20) NOT NULL,
			trip_origin VARCHAR(100) NOT NULL,
			trip_destination VARCHAR(100) NOT NULL,
			trip_departure_datetime DATETIME NOT NULL,
			trip_arrival_datetime DATETIME NOT NULL,
			trip_price BIGINT NOT NULL DEFAULT 0,
			trip_vehicle_type VARCHAR(100) NOT NULL DEFAULT '',
			trip_operator VARCHAR(100) NOT NULL DEFAULT '',
			trip_available_seats INT NOT NULL,
			trip_total_seats INT NOT NULL,
			trip_status VARCHAR(20) NOT NULL,
			KEY idx_booking_date (booking_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

		"users": `CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(100) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'passenger',
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}

	for table, ddl := range ddls {
		if intdb.HasTable(db, table) {
			continue
		}
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("init schema: create %s: %w", table, err)
		}
	}
	return nil
}

// SeedSchedules loads the demo schedule catalog when it is not already
// present. Departure times are laid out relative to the seed moment so the
// catalog always contains upcoming trips on a fresh database; existing rows
// are left untouched.
func SeedSchedules(db *sql.DB, now time.Time) error {
	repo := ScheduleRepository{DB: db}
	for _, s := range demoSchedules(now) {
		if err := repo.Insert(s); err != nil {
			return fmt.Errorf("seed schedules: %w", err)
		}
	}
	return nil
}

func demoSchedules(now time.Time) []models.TripSchedule {
	at := func(hours int) time.Time {
		return now.Add(time.Duration(hours) * time.Hour).UTC().Truncate(time.Second)
	}
	mk := func(id, origin, destination string, dep, arr int, price int64, vehicle, operator string, available, total int, status models.TripStatus) models.TripSchedule {
		return models.TripSchedule{
			ID:                id,
			Origin:            origin,
			Destination:       destination,
			DepartureDateTime: at(dep),
			ArrivalDateTime:   at(arr),
			Price:             price,
			VehicleType:       vehicle,
			Operator:          operator,
			AvailableSeats:    available,
			TotalSeats:        total,
			Status:            status,
		}
	}

	return []models.TripSchedule{
		// Kano <-> Abuja
		mk("KA101", "Kano", "Abuja", 24, 30, 7500, "Luxury Bus", "Arewa Motors", 25, 40, models.StatusAvailable),
		mk("AK102", "Abuja", "Kano", 26, 32, 7500, "Luxury Bus", "Arewa Motors", 0, 40, models.StatusFull),
		mk("KA103", "Kano", "Abuja", 48, 54, 8000, "Sienna", "Northern Express", 5, 7, models.StatusAvailable),
		mk("KA104", "Kano", "Abuja", 72, 78, 7200, "Minibus", "Arewa Motors", 12, 18, models.StatusAvailable),

		// Kano <-> Kaduna
		mk("KKD201", "Kano", "Kaduna", 20, 23, 3000, "Minibus", "Kaduna Link", 10, 18, models.StatusAvailable),
		mk("KDK202", "Kaduna", "Kano", 22, 25, 3000, "Minibus", "Kaduna Link", 3, 18, models.StatusAvailable),
		mk("KKD203", "Kano", "Kaduna", 40, 43, 3200, "Sienna", "Arewa Swift", 6, 7, models.StatusAvailable),

		// Kaduna <-> Abuja
		mk("KDA301", "Kaduna", "Abuja", 18, 21, 4000, "Luxury Bus", "Capital Connect", 30, 40, models.StatusAvailable),
		mk("ADK302", "Abuja", "Kaduna", 19, 22, 4000, "Luxury Bus", "Capital Connect", 0, 40, models.StatusFull),
		mk("KDA303", "Kaduna", "Abuja", 30, 33, 4200, "Minibus", "FCT Commute", 15, 18, models.StatusAvailable),

		// Abuja <-> Lagos
		mk("AL401", "Abuja", "Lagos", 36, 48, 12000, "Luxury Night Bus", "Southern Star", 15, 35, models.StatusAvailable),
		mk("LA402", "Lagos", "Abuja", 40, 52, 12500, "Luxury Night Bus", "Southern Star", 8, 35, models.StatusAvailable),
		mk("AL403", "Abuja", "Lagos", 60, 72, 11500, "Day Bus", "Eko Travels", 2, 45, models.StatusAvailable),
		mk("LA404", "Lagos", "Abuja", 72, 84, 0, "Day Bus", "Eko Travels", 0, 45, models.StatusFull),
		mk("AL405", "Abuja", "Lagos", 80, 92, 13000, "Sienna VIP", "Arewa Premium", 4, 7, models.StatusAvailable),
	}
}
