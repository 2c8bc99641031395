package models

// User roles mirror the three dashboards of the client app.
const (
	RoleAdmin     = "admin"
	RolePassenger = "passenger"
	RoleDriver    = "driver"
)

// User is an account that can authenticate and book trips.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
