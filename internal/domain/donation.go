package domain

import (
	"math"
	"time"
)

// Currency enumerates the currencies donations are recorded in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyIDR Currency = "IDR"
)

// DonationType enumerates supported donation cadences.
type DonationType string

const (
	DonationTypeOneTime DonationType = "one-time"
	DonationTypeMonthly DonationType = "monthly"
)

// PaymentStatusCompleted is the only status counted into totals. The
// column is free-form; other values come from the payment provider.
const PaymentStatusCompleted = "completed"

// IDRPerUSD is the fixed conversion rate used when folding mixed-currency
// amounts into a USD-equivalent figure. It is an approximation for display
// aggregation only, not a live exchange rate.
const IDRPerUSD = 16000

// Donation is a supporter contribution. Rows are written by the external
// payment collaborator; this application only reads them.
type Donation struct {
	ID              string
	Amount          float64
	Currency        Currency
	Type            DonationType
	DonorID         string
	DogID           *string
	DogName         *string
	PaymentStatus   string
	StripePaymentID string
	CreatedAt       time.Time
}

// USDEquivalent converts the donation amount into USD using the fixed
// IDRPerUSD approximation.
func (d Donation) USDEquivalent() float64 {
	if d.Currency == CurrencyIDR {
		return d.Amount / IDRPerUSD
	}
	return d.Amount
}

// SumUSDEquivalent folds donation amounts into a whole-dollar figure,
// rounded to the nearest integer.
func SumUSDEquivalent(donations []Donation) int64 {
	var total float64
	for _, d := range donations {
		total += d.USDEquivalent()
	}
	return int64(math.Round(total))
}
