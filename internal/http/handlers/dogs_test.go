package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"server/internal/domain"
)

func TestDogsListEmpty(t *testing.T) {
	a := newTestApp()
	rec := doRequest(a.DogsList, httptest.NewRequest(http.MethodGet, "/v1/dogs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Items []dogDTO `json:"items"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Items == nil || len(body.Items) != 0 {
		t.Fatalf("items = %v, want empty non-nil slice", body.Items)
	}
}

func TestDogsGetNotFound(t *testing.T) {
	a := newTestApp()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/dogs/missing", nil), "id", "missing")
	rec := doRequest(a.DogsGet, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not_found") {
		t.Fatalf("body = %s, want not_found error code", rec.Body.String())
	}
}

func TestDogsCreateValidationShortCircuits(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		message string
	}{
		{"missing name", `{"monthly_amount_usd":25,"monthly_amount_idr":400000}`, "Name is required"},
		{"zero usd", `{"name":"Bima","monthly_amount_usd":0,"monthly_amount_idr":400000}`, "Monthly amount (USD) must be a positive number"},
		{"negative idr", `{"name":"Bima","monthly_amount_usd":25,"monthly_amount_idr":-1}`, "Monthly amount (IDR) must be a positive number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestApp()
			dogs := a.Dogs.(*fakeDogRepo)
			req := httptest.NewRequest(http.MethodPost, "/v1/admin/dogs", strings.NewReader(tc.payload))
			rec := doRequest(a.DogsCreate, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.message) {
				t.Fatalf("body = %s, want message %q", rec.Body.String(), tc.message)
			}
			if len(dogs.created) != 0 {
				t.Fatalf("repo saw %d create calls, want none", len(dogs.created))
			}
		})
	}
}

func TestDogsCreateSuccess(t *testing.T) {
	a := newTestApp()
	payload := `{"name":"Bima","story":"found near the market","monthly_amount_usd":25,"monthly_amount_idr":400000}`
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/dogs", strings.NewReader(payload))
	rec := doRequest(a.DogsCreate, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var got dogDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Bima" || got.MonthlyAmountUSD != 25 {
		t.Fatalf("unexpected dog: %+v", got)
	}
}

func TestDogsUpdateClearSponsor(t *testing.T) {
	a := newTestApp()
	sponsor := "user-1"
	a.Dogs.(*fakeDogRepo).dogs = []domain.Dog{{ID: "dog-1", Name: "Luna", SponsorID: &sponsor, IsSponsored: true}}

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/v1/admin/dogs/dog-1", strings.NewReader(`{"clear_sponsor":true}`)),
		"id", "dog-1")
	rec := doRequest(a.DogsUpdate, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got dogDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SponsorID != nil || got.IsSponsored {
		t.Fatalf("sponsor not cleared: %+v", got)
	}
}

func TestDogsUpdateClearPhoto(t *testing.T) {
	a := newTestApp()
	photo := "https://cdn.example.com/luna.jpg"
	story := "rescued from the beach"
	a.Dogs.(*fakeDogRepo).dogs = []domain.Dog{{ID: "dog-1", Name: "Luna", PhotoURL: &photo, Story: &story}}

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/v1/admin/dogs/dog-1", strings.NewReader(`{"photo_url":""}`)),
		"id", "dog-1")
	rec := doRequest(a.DogsUpdate, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got dogDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PhotoURL != nil {
		t.Fatalf("photo_url = %q, want null", *got.PhotoURL)
	}
	if got.Story == nil || *got.Story != story {
		t.Fatalf("story = %v, want untouched %q", got.Story, story)
	}
}

func TestDogsUpdateOmittedFieldsKept(t *testing.T) {
	a := newTestApp()
	photo := "https://cdn.example.com/luna.jpg"
	a.Dogs.(*fakeDogRepo).dogs = []domain.Dog{{ID: "dog-1", Name: "Luna", PhotoURL: &photo, MonthlyAmountUSD: 25}}

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/v1/admin/dogs/dog-1", strings.NewReader(`{"name":"Luna Maya"}`)),
		"id", "dog-1")
	rec := doRequest(a.DogsUpdate, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got dogDTO
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Luna Maya" {
		t.Fatalf("name = %q, want renamed", got.Name)
	}
	if got.PhotoURL == nil || *got.PhotoURL != photo {
		t.Fatalf("photo_url = %v, want untouched %q", got.PhotoURL, photo)
	}
	if got.MonthlyAmountUSD != 25 {
		t.Fatalf("monthly_amount_usd = %v, want untouched 25", got.MonthlyAmountUSD)
	}
}

func TestDogsDelete(t *testing.T) {
	a := newTestApp()
	a.Dogs.(*fakeDogRepo).dogs = []domain.Dog{{ID: "dog-1", Name: "Luna"}}

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/v1/admin/dogs/dog-1", nil), "id", "dog-1")
	rec := doRequest(a.DogsDelete, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if len(a.Dogs.(*fakeDogRepo).dogs) != 0 {
		t.Fatal("dog not removed")
	}
}
