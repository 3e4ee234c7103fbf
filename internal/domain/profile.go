package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleDonor UserRole = "donor"
	UserRoleAdmin UserRole = "admin"
)

// Profile represents an authenticated supporter account. The row id is the
// same as the authentication subject id.
type Profile struct {
	ID                 string
	Name               string
	Email              string
	Country            string
	CurrencyPreference Currency
	IsMonthlySponsor   bool
	TotalDonated       float64
	StripeCustomerID   *string
	Role               UserRole
	CreatedAt          time.Time
}

// IsAdmin reports whether the profile may use the admin surface.
func (p Profile) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}
