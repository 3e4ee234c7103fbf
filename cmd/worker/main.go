package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/sqlinline"
)

// reconciler repairs derived columns that drift when the payment
// collaborator writes donations directly: the dogs.is_sponsored flag,
// each profile's total_donated figure and the monthly-sponsor flag.
type reconciler struct {
	runner infra.SQLExecutor
	logger infra.Logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("worker: db connection failed")
	}
	defer pool.Close()

	w := &reconciler{
		runner: infra.NewSQLRunner(pool, logger),
		logger: logger,
	}

	if err := w.Run(ctx, cfg.WorkerInterval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker: stopped with error")
	}
	logger.Info().Msg("worker: stopped")
}

// Run ticks immediately and then on every interval until the context is
// cancelled. A failing statement is logged and retried next tick; one
// statement's failure does not skip the others.
func (w *reconciler) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	w.logger.Info().Dur("interval", interval).Msg("worker: started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *reconciler) tick(ctx context.Context) {
	w.reconcileSponsorFlags(ctx)
	w.recomputeTotals(ctx)
	w.refreshMonthlyFlags(ctx)
}

func (w *reconciler) reconcileSponsorFlags(ctx context.Context) {
	tag, err := w.runner.Exec(ctx, sqlinline.QReconcileSponsorFlags)
	if err != nil {
		w.logger.Error().Err(err).Msg("worker: sponsor flag reconciliation failed")
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		w.logger.Info().Int64("rows", n).Msg("worker: sponsor flags repaired")
	}
}

func (w *reconciler) recomputeTotals(ctx context.Context) {
	tag, err := w.runner.Exec(ctx, sqlinline.QRecomputeTotalDonated, domain.IDRPerUSD)
	if err != nil {
		w.logger.Error().Err(err).Msg("worker: total_donated recompute failed")
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		w.logger.Info().Int64("rows", n).Msg("worker: donation totals updated")
	}
}

func (w *reconciler) refreshMonthlyFlags(ctx context.Context) {
	tag, err := w.runner.Exec(ctx, sqlinline.QRefreshMonthlySponsorFlags)
	if err != nil {
		w.logger.Error().Err(err).Msg("worker: monthly sponsor refresh failed")
		return
	}
	if n := tag.RowsAffected(); n > 0 {
		w.logger.Info().Int64("rows", n).Msg("worker: monthly sponsor flags updated")
	}
}
