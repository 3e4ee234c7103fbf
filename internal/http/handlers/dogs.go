package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

type dogDTO struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PhotoURL         *string   `json:"photo_url"`
	Story            *string   `json:"story"`
	MonthlyAmountUSD float64   `json:"monthly_amount_usd"`
	MonthlyAmountIDR float64   `json:"monthly_amount_idr"`
	IsSponsored      bool      `json:"is_sponsored"`
	SponsorID        *string   `json:"sponsor_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func toDogDTO(d domain.Dog) dogDTO {
	return dogDTO{
		ID:               d.ID,
		Name:             d.Name,
		PhotoURL:         d.PhotoURL,
		Story:            d.Story,
		MonthlyAmountUSD: d.MonthlyAmountUSD,
		MonthlyAmountIDR: d.MonthlyAmountIDR,
		IsSponsored:      d.IsSponsored,
		SponsorID:        d.SponsorID,
		CreatedAt:        d.CreatedAt,
	}
}

type dogRequest struct {
	Name             string  `json:"name"`
	PhotoURL         string  `json:"photo_url"`
	Story            string  `json:"story"`
	MonthlyAmountUSD float64 `json:"monthly_amount_usd"`
	MonthlyAmountIDR float64 `json:"monthly_amount_idr"`
}

// DogsList returns every dog in creation order.
func (a *App) DogsList(w http.ResponseWriter, r *http.Request) {
	dogs, err := a.Dogs.List(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("list dogs failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load dogs")
		return
	}
	items := make([]dogDTO, 0, len(dogs))
	for _, d := range dogs {
		items = append(items, toDogDTO(d))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// DogsGet returns one dog, 404 when absent.
func (a *App) DogsGet(w http.ResponseWriter, r *http.Request) {
	dog, err := a.Dogs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "dog not found")
			return
		}
		a.Logger.Error().Err(err).Msg("get dog failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load dog")
		return
	}
	a.json(w, http.StatusOK, toDogDTO(*dog))
}

// DogsCreate validates the form and inserts a dog. Validation failures
// short-circuit before any statement is issued.
func (a *App) DogsCreate(w http.ResponseWriter, r *http.Request) {
	var req dogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	in := domain.DogInput{
		Name:             req.Name,
		PhotoURL:         req.PhotoURL,
		Story:            req.Story,
		MonthlyAmountUSD: req.MonthlyAmountUSD,
		MonthlyAmountIDR: req.MonthlyAmountIDR,
	}
	if err := in.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	dog, err := a.Dogs.Create(r.Context(), in)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	a.json(w, http.StatusCreated, toDogDTO(*dog))
}

type dogPatchRequest struct {
	Name             *string  `json:"name"`
	PhotoURL         *string  `json:"photo_url"`
	Story            *string  `json:"story"`
	MonthlyAmountUSD *float64 `json:"monthly_amount_usd"`
	MonthlyAmountIDR *float64 `json:"monthly_amount_idr"`
	SponsorID        *string  `json:"sponsor_id"`
	ClearSponsor     bool     `json:"clear_sponsor"`
}

// DogsUpdate applies a partial field set and returns the row as re-read
// from the database.
func (a *App) DogsUpdate(w http.ResponseWriter, r *http.Request) {
	var req dogPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	patch := domain.DogPatch{
		Name:             req.Name,
		PhotoURL:         req.PhotoURL,
		Story:            req.Story,
		MonthlyAmountUSD: req.MonthlyAmountUSD,
		MonthlyAmountIDR: req.MonthlyAmountIDR,
		SponsorID:        req.SponsorID,
		ClearSponsor:     req.ClearSponsor,
	}
	if err := patch.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	dog, err := a.Dogs.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "dog not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	a.json(w, http.StatusOK, toDogDTO(*dog))
}

// DogsDelete removes a dog.
func (a *App) DogsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Dogs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
