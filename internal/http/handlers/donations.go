package handlers

import (
	"net/http"
	"time"

	"server/internal/middleware"
	"server/internal/money"
)

type donationDTO struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	DisplayAmount string    `json:"display_amount"`
	Type          string    `json:"type"`
	DogID         *string   `json:"dog_id"`
	DogName       *string   `json:"dog_name"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationsMine lists the caller's donations newest first, each joined
// with the sponsored dog's name when one is attached.
func (a *App) DonationsMine(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	donations, err := a.Donations.ListByDonor(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list donations failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	items := make([]donationDTO, 0, len(donations))
	for _, d := range donations {
		items = append(items, donationDTO{
			ID:            d.ID,
			Amount:        d.Amount,
			Currency:      string(d.Currency),
			DisplayAmount: money.Format(d.Amount, d.Currency, locale),
			Type:          string(d.Type),
			DogID:         d.DogID,
			DogName:       d.DogName,
			PaymentStatus: d.PaymentStatus,
			CreatedAt:     d.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// SponsorshipsMine lists the dogs the caller sponsors.
func (a *App) SponsorshipsMine(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	dogs, err := a.Dogs.ListBySponsor(r.Context(), userID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list sponsorships failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load sponsorships")
		return
	}
	items := make([]dogDTO, 0, len(dogs))
	for _, d := range dogs {
		items = append(items, toDogDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
