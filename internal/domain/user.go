package domain

import "time"

// Role represents the access role of a user
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// CanManageBookings returns true if the role may confirm or complete bookings
func (r Role) CanManageBookings() bool {
	return r == RoleManager || r == RoleAdmin
}

// User represents an account. The engine only needs users as foreign-key
// owners of bookings, reviews and favourites.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	Phone     *string
	CreatedAt time.Time
}
