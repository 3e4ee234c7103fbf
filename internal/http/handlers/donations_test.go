package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/money"
)

func TestDonationsMineRequiresUser(t *testing.T) {
	a := newTestApp()
	rec := doRequest(a.DonationsMine, httptest.NewRequest(http.MethodGet, "/v1/me/donations", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing user context") {
		t.Fatalf("body = %s, want missing user context", rec.Body.String())
	}
}

func TestDonationsMine(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	dogID := "dog-1"
	dogName := "Luna"
	a := newTestApp()
	a.Donations.(*fakeDonationRepo).byDonor = map[string][]domain.Donation{
		"u1": {
			{
				ID: "dn1", Amount: 400000, Currency: domain.CurrencyIDR,
				Type: domain.DonationTypeMonthly, DonorID: "u1",
				DogID: &dogID, DogName: &dogName,
				PaymentStatus: "completed", CreatedAt: now,
			},
			{
				ID: "dn2", Amount: 50, Currency: domain.CurrencyUSD,
				Type: domain.DonationTypeOneTime, DonorID: "u1",
				PaymentStatus: "pending", CreatedAt: now.Add(-time.Hour),
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/me/donations", nil)
	ctx := middleware.ContextWithUser(req.Context(), "u1", "ayu@example.com")
	ctx = middleware.ContextWithLocale(ctx, "id", "ID")
	rec := doRequest(a.DonationsMine, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Items []donationDTO `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(body.Items))
	}

	monthly := body.Items[0]
	if monthly.ID != "dn1" || monthly.Currency != "IDR" || monthly.Type != "monthly" {
		t.Fatalf("monthly donation mapped wrong: %+v", monthly)
	}
	if monthly.DogID == nil || *monthly.DogID != dogID || monthly.DogName == nil || *monthly.DogName != dogName {
		t.Fatalf("dog join not mapped: %+v", monthly)
	}
	if want := money.Format(400000, domain.CurrencyIDR, "id"); monthly.DisplayAmount != want {
		t.Fatalf("display_amount = %q, want %q rendered for the id locale", monthly.DisplayAmount, want)
	}

	oneTime := body.Items[1]
	if oneTime.DogID != nil || oneTime.DogName != nil {
		t.Fatalf("general donation should carry nil dog fields: %+v", oneTime)
	}
	if want := money.Format(50, domain.CurrencyUSD, "id"); oneTime.DisplayAmount != want {
		t.Fatalf("display_amount = %q, want %q", oneTime.DisplayAmount, want)
	}
	if oneTime.PaymentStatus != "pending" {
		t.Fatalf("payment_status = %q, want pending", oneTime.PaymentStatus)
	}
}

func TestSponsorshipsMine(t *testing.T) {
	sponsor := "u1"
	other := "u2"
	a := newTestApp()
	a.Dogs.(*fakeDogRepo).dogs = []domain.Dog{
		{ID: "d1", Name: "Luna", SponsorID: &sponsor, IsSponsored: true},
		{ID: "d2", Name: "Bima", SponsorID: &other, IsSponsored: true},
		{ID: "d3", Name: "Sari"},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/me/sponsorships", nil)
	rec := doRequest(a.SponsorshipsMine, req.WithContext(middleware.ContextWithUser(req.Context(), "u1", "")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Items []dogDTO `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].ID != "d1" {
		t.Fatalf("items = %+v, want only the caller's dog", body.Items)
	}
	if !body.Items[0].IsSponsored {
		t.Fatalf("dog not marked sponsored: %+v", body.Items[0])
	}
}

func TestSponsorshipsMineRequiresUser(t *testing.T) {
	a := newTestApp()
	rec := doRequest(a.SponsorshipsMine, httptest.NewRequest(http.MethodGet, "/v1/me/sponsorships", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
