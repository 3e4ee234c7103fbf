package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

type dogUpdateDTO struct {
	ID        string    `json:"id"`
	DogID     string    `json:"dog_id"`
	PhotoURL  *string   `json:"photo_url"`
	Caption   string    `json:"caption"`
	PostedBy  string    `json:"posted_by"`
	CreatedAt time.Time `json:"created_at"`
}

func toDogUpdateDTO(u domain.DogUpdate) dogUpdateDTO {
	return dogUpdateDTO{
		ID:        u.ID,
		DogID:     u.DogID,
		PhotoURL:  u.PhotoURL,
		Caption:   u.Caption,
		PostedBy:  u.PostedBy,
		CreatedAt: u.CreatedAt,
	}
}

// DogUpdatesList returns a dog's progress updates, newest first.
func (a *App) DogUpdatesList(w http.ResponseWriter, r *http.Request) {
	updates, err := a.DogUpdates.ListByDog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.Logger.Error().Err(err).Msg("list dog updates failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load updates")
		return
	}
	items := make([]dogUpdateDTO, 0, len(updates))
	for _, u := range updates {
		items = append(items, toDogUpdateDTO(u))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type dogUpdateRequest struct {
	Caption  string `json:"caption"`
	PhotoURL string `json:"photo_url"`
}

// DogUpdatesCreate posts a progress update for a dog. Updates are
// immutable afterwards.
func (a *App) DogUpdatesCreate(w http.ResponseWriter, r *http.Request) {
	var req dogUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	in := domain.DogUpdateInput{
		DogID:    chi.URLParam(r, "id"),
		Caption:  req.Caption,
		PhotoURL: req.PhotoURL,
		PostedBy: a.currentUserID(r),
	}
	if err := in.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	update, err := a.DogUpdates.Create(r.Context(), in)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	a.json(w, http.StatusCreated, toDogUpdateDTO(*update))
}
