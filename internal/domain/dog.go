package domain

import (
	"strings"
	"time"
)

// Dog represents a rescued dog available for sponsorship.
type Dog struct {
	ID               string
	Name             string
	PhotoURL         *string
	Story            *string
	MonthlyAmountUSD float64
	MonthlyAmountIDR float64
	IsSponsored      bool
	SponsorID        *string
	CreatedAt        time.Time
}

// DogInput carries the admin-provided fields for creating a dog.
type DogInput struct {
	Name             string
	PhotoURL         string
	Story            string
	MonthlyAmountUSD float64
	MonthlyAmountIDR float64
}

// Validate checks the input before any statement is issued. The messages
// are surfaced to the admin form as-is.
func (in DogInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ValidationError("Name is required")
	}
	if in.MonthlyAmountUSD <= 0 {
		return ValidationError("Monthly amount (USD) must be a positive number")
	}
	if in.MonthlyAmountIDR <= 0 {
		return ValidationError("Monthly amount (IDR) must be a positive number")
	}
	return nil
}

// DogPatch is a partial field set for updating a dog. Nil fields are left
// untouched; an empty PhotoURL or Story clears the stored value.
type DogPatch struct {
	Name             *string
	PhotoURL         *string
	Story            *string
	MonthlyAmountUSD *float64
	MonthlyAmountIDR *float64
	IsSponsored      *bool
	SponsorID        *string
	ClearSponsor     bool
}

// Validate rejects patches that would violate the same constraints as
// DogInput for the fields they touch.
func (p DogPatch) Validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return ValidationError("Name is required")
	}
	if p.MonthlyAmountUSD != nil && *p.MonthlyAmountUSD <= 0 {
		return ValidationError("Monthly amount (USD) must be a positive number")
	}
	if p.MonthlyAmountIDR != nil && *p.MonthlyAmountIDR <= 0 {
		return ValidationError("Monthly amount (IDR) must be a positive number")
	}
	return nil
}
