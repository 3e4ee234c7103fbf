package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"server/internal/domain"
)

type statsBody struct {
	DogsRescued    int64 `json:"dogs_rescued"`
	ActiveSponsors int64 `json:"active_sponsors"`
	TotalRaised    int64 `json:"total_raised"`
}

func getStats(t *testing.T, a *App) statsBody {
	t.Helper()
	rec := doRequest(a.StatsSummary, httptest.NewRequest(http.MethodGet, "/v1/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body statsBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestStatsSummaryEmpty(t *testing.T) {
	body := getStats(t, newTestApp())
	if body.DogsRescued != 0 || body.ActiveSponsors != 0 || body.TotalRaised != 0 {
		t.Fatalf("stats = %+v, want all zero", body)
	}
}

func TestStatsSummaryMixedCurrencies(t *testing.T) {
	a := newTestApp()
	a.Dogs.(*fakeDogRepo).dogs = []domain.Dog{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}}
	a.Dogs.(*fakeDogRepo).sponsored = 2
	// Only completed rows reach the sum; 160000 IDR converts to 10 USD.
	a.Donations.(*fakeDonationRepo).completed = []domain.Donation{
		{Amount: 100, Currency: domain.CurrencyUSD},
		{Amount: 160000, Currency: domain.CurrencyIDR},
	}

	body := getStats(t, a)
	if body.DogsRescued != 3 {
		t.Errorf("dogs_rescued = %d, want 3", body.DogsRescued)
	}
	if body.ActiveSponsors != 2 {
		t.Errorf("active_sponsors = %d, want 2", body.ActiveSponsors)
	}
	if body.TotalRaised != 110 {
		t.Errorf("total_raised = %d, want 110", body.TotalRaised)
	}
}

func TestStatsSummaryDegradesPerField(t *testing.T) {
	a := newTestApp()
	dogs := a.Dogs.(*fakeDogRepo)
	dogs.dogs = []domain.Dog{{ID: "d1"}}
	dogs.sponsorsErr = errors.New("boom")
	a.Donations.(*fakeDonationRepo).completed = []domain.Donation{{Amount: 40, Currency: domain.CurrencyUSD}}

	body := getStats(t, a)
	if body.DogsRescued != 1 {
		t.Errorf("dogs_rescued = %d, want 1", body.DogsRescued)
	}
	if body.ActiveSponsors != 0 {
		t.Errorf("active_sponsors = %d, want degraded 0", body.ActiveSponsors)
	}
	if body.TotalRaised != 40 {
		t.Errorf("total_raised = %d, want 40", body.TotalRaised)
	}
}
