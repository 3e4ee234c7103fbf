// Package money renders donation amounts for display. Formatting is
// locale-aware; conversion between currencies lives in domain.
package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"server/internal/domain"
)

func tagFor(locale string) language.Tag {
	if locale == "id" {
		return language.Indonesian
	}
	return language.AmericanEnglish
}

// Format renders an amount with its currency symbol for the given locale
// ("en" or "id").
func Format(amount float64, cur domain.Currency, locale string) string {
	unit, err := currency.ParseISO(string(cur))
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(tagFor(locale))
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}
