package models

import "gorm.io/gorm"

// User is a customer account. The address fields are the user's CURRENT
// address; orders copy them at creation time and never read them again.
type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone,omitempty"`

	StreetAddress string `gorm:"size:255" json:"street_address,omitempty"`
	City          string `gorm:"size:100" json:"city,omitempty"`
	State         string `gorm:"size:100" json:"state,omitempty"`
	PostalCode    string `gorm:"size:20" json:"postal_code,omitempty"`
	Country       string `gorm:"size:100;default:USA" json:"country,omitempty"`

	// No column default here: gorm omits zero-valued fields that carry a
	// default tag, which would silently turn IsActive=false into true on
	// insert. Callers set the flag explicitly.
	IsActive bool `gorm:"not null" json:"is_active"`
}
