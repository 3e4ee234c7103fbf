package handlers

import (
	"net/http"

	"server/internal/domain"
)

// StatsSummary serves the public fundraising counters. The three source
// queries are independent and a failed one degrades its field to zero
// instead of failing the response; the figures may therefore reflect
// slightly different instants, which is acceptable for a marketing stat.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dogsRescued, err := a.Dogs.Count(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats: dog count failed")
		dogsRescued = 0
	}

	activeSponsors, err := a.Dogs.CountSponsored(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats: sponsor count failed")
		activeSponsors = 0
	}

	var totalRaised int64
	completed, err := a.Donations.ListCompleted(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("stats: donation sum failed")
	} else {
		totalRaised = domain.SumUSDEquivalent(completed)
	}

	a.json(w, http.StatusOK, map[string]any{
		"dogs_rescued":    dogsRescued,
		"active_sponsors": activeSponsors,
		"total_raised":    totalRaised,
	})
}
