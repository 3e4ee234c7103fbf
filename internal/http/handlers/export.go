package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"server/internal/sqlinline"
	"server/pkg/zipexport"
)

// ExportArchive streams a zip of dogs.csv and donations.csv for offline
// bookkeeping. The export is a point-in-time read, not a transaction.
func (a *App) ExportArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dogs, err := a.Dogs.List(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: dog list failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}
	dogsCSV := &bytes.Buffer{}
	cw := csv.NewWriter(dogsCSV)
	_ = cw.Write([]string{"id", "name", "photo_url", "story", "monthly_amount_usd", "monthly_amount_idr", "is_sponsored", "sponsor_id", "created_at"})
	for _, d := range dogs {
		_ = cw.Write([]string{
			d.ID,
			d.Name,
			strDeref(d.PhotoURL),
			strDeref(d.Story),
			strconv.FormatFloat(d.MonthlyAmountUSD, 'f', 2, 64),
			strconv.FormatFloat(d.MonthlyAmountIDR, 'f', 2, 64),
			strconv.FormatBool(d.IsSponsored),
			strDeref(d.SponsorID),
			d.CreatedAt.Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		a.Logger.Error().Err(err).Msg("export: dogs csv failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}

	donationsCSV, err := a.exportDonationsCSV(r)
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: donations csv failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}

	archive, err := zipexport.Archive([]zipexport.File{
		{Name: "dogs.csv", Data: dogsCSV.Bytes()},
		{Name: "donations.csv", Data: donationsCSV},
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("export: archive failed")
		a.error(w, http.StatusInternalServerError, "internal", "export failed")
		return
	}

	filename := fmt.Sprintf("pawhaven-export-%s.zip", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}

func (a *App) exportDonationsCSV(r *http.Request) ([]byte, error) {
	rows, err := a.SQL.Query(r.Context(), sqlinline.QExportDonations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buf := &bytes.Buffer{}
	cw := csv.NewWriter(buf)
	_ = cw.Write([]string{"id", "amount", "currency", "type", "donor_id", "dog_name", "payment_status", "stripe_payment_id", "created_at"})
	for rows.Next() {
		var (
			id, currency, kind, donorID, dogName, status string
			amount                                       float64
			stripeID                                     *string
			createdAt                                    time.Time
		)
		if err := rows.Scan(&id, &amount, &currency, &kind, &donorID, &dogName, &status, &stripeID, &createdAt); err != nil {
			return nil, err
		}
		_ = cw.Write([]string{
			id,
			strconv.FormatFloat(amount, 'f', 2, 64),
			currency,
			kind,
			donorID,
			dogName,
			status,
			strDeref(stripeID),
			createdAt.Format(time.RFC3339),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
