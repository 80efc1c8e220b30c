package domain

import "time"

// Role of a marketplace account
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleVendor   Role = "VENDOR"
	RoleAdmin    Role = "ADMIN"
)

// User represents an authenticated marketplace account
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsVendor returns true for vendor accounts
func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the customer shape embedded into bookings
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
