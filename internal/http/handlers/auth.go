package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"server/internal/auth"
	"server/internal/domain"
	"server/internal/middleware"
)

type profileDTO struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Country            string    `json:"country"`
	CurrencyPreference string    `json:"currency_preference"`
	IsMonthlySponsor   bool      `json:"is_monthly_sponsor"`
	TotalDonated       float64   `json:"total_donated"`
	Role               string    `json:"role"`
	CreatedAt          time.Time `json:"created_at"`
}

func toProfileDTO(p domain.Profile) profileDTO {
	return profileDTO{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Country:            p.Country,
		CurrencyPreference: string(p.CurrencyPreference),
		IsMonthlySponsor:   p.IsMonthlySponsor,
		TotalDonated:       p.TotalDonated,
		Role:               string(p.Role),
		CreatedAt:          p.CreatedAt,
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthSignUp registers a new account. Country and currency default from the
// request's detected locale; the caller never posts them on signup. When
// email confirmation is required the account is created without a session
// and the response carries the confirmation prompt instead of a token.
func (a *App) AuthSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	switch {
	case req.Email == "":
		a.error(w, http.StatusBadRequest, "validation", "Email is required")
		return
	case len(req.Password) < 8:
		a.error(w, http.StatusBadRequest, "validation", "Password must be at least 8 characters")
		return
	case req.Name == "":
		a.error(w, http.StatusBadRequest, "validation", "Name is required")
		return
	}

	country := middleware.CountryFromContext(r.Context())
	session, err := a.Auth.SignUp(r.Context(), auth.SignUpParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Country:  country,
		Currency: middleware.CurrencyForCountry(country),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			a.error(w, http.StatusConflict, "email_taken", err.Error())
		case domain.IsValidation(err):
			a.error(w, http.StatusBadRequest, "validation", err.Error())
		default:
			a.Logger.Error().Err(err).Msg("signup failed")
			a.error(w, http.StatusInternalServerError, "internal", "signup failed")
		}
		return
	}
	if session == nil {
		a.json(w, http.StatusOK, map[string]any{
			"message": "Check your email to confirm your account.",
		})
		return
	}
	a.sessionResponse(w, r, session)
}

// AuthSignIn exchanges email and password for a bearer token. Invalid
// credentials and unconfirmed accounts are both 401; the body says which.
func (a *App) AuthSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	session, err := a.Auth.SignInWithPassword(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			a.error(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		case errors.Is(err, domain.ErrEmailNotConfirmed):
			a.error(w, http.StatusUnauthorized, "email_not_confirmed", "Check your email to confirm your account.")
		default:
			a.Logger.Error().Err(err).Msg("signin failed")
			a.error(w, http.StatusInternalServerError, "internal", "signin failed")
		}
		return
	}
	a.sessionResponse(w, r, session)
}

// AuthSignOut revokes the presented session token. Revocation of an already
// revoked or unknown token is not an error; sign-out is idempotent.
func (a *App) AuthSignOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if err := a.Auth.SignOut(r.Context(), token); err != nil {
		a.Logger.Error().Err(err).Msg("signout failed")
		a.error(w, http.StatusInternalServerError, "internal", "signout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the caller's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	profile, err := a.Profiles.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "profile not found")
			return
		}
		a.Logger.Error().Err(err).Msg("load profile failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	a.json(w, http.StatusOK, toProfileDTO(*profile))
}

// sessionResponse emits the token envelope for a fresh session, joined with
// the profile when it is already readable. A profile row that lags behind
// the auth record does not fail the login.
func (a *App) sessionResponse(w http.ResponseWriter, r *http.Request, session *auth.Session) {
	body := map[string]any{
		"token":      session.Token,
		"expires_at": session.ExpiresAt,
	}
	if profile, err := a.Profiles.GetByID(r.Context(), session.UserID); err == nil {
		body["user"] = toProfileDTO(*profile)
	} else if !errors.Is(err, domain.ErrNotFound) {
		a.Logger.Warn().Err(err).Msg("profile lookup after login failed")
	}
	a.json(w, http.StatusOK, body)
}
