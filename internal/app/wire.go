package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres/activity"
	goalrepo "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres/goal"
	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres/goalevent"
	ratiorepo "github.com/heartmarshall/sesh-ledger/internal/adapter/postgres/ratio"
	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres/session"
	"github.com/heartmarshall/sesh-ledger/internal/adapter/postgres/stash"
	"github.com/heartmarshall/sesh-ledger/internal/config"
	"github.com/heartmarshall/sesh-ledger/internal/service/attribution"
	"github.com/heartmarshall/sesh-ledger/internal/service/distribution"
	"github.com/heartmarshall/sesh-ledger/internal/service/goal"
	"github.com/heartmarshall/sesh-ledger/internal/service/ledger"
	"github.com/heartmarshall/sesh-ledger/internal/service/ratio"
	"github.com/heartmarshall/sesh-ledger/internal/service/tracker"
	"github.com/heartmarshall/sesh-ledger/internal/service/window"
)

// Services holds every service built on one pool.
type Services struct {
	Ratios       *ratio.Service
	Ledger       *ledger.Service
	Attribution  *attribution.Service
	Distribution *distribution.Service
	Goals        *goal.Service
	Tracker      *tracker.Service
}

// Wire builds repositories, transaction managers and services. The ledger
// and goal paths retry with their own policies.
func Wire(pool *pgxpool.Pool, cfg *config.Config, log *slog.Logger) *Services {
	// Repositories
	stashRepo := stash.New(pool)
	ratioRepo := ratiorepo.New(pool)
	activities := activityrepo.New(pool)
	sessions := session.New(pool)
	goals := goalrepo.New(pool, log)
	events := goalevent.New(pool)

	// Transaction managers
	ledgerTx := postgres.NewTxManager(pool, postgres.RetryPolicy{
		MaxRetries: cfg.Ledger.TxMaxRetries,
		BaseDelay:  cfg.Ledger.TxRetryBaseDelay,
	})
	goalTx := postgres.NewTxManager(pool, postgres.RetryPolicy{
		MaxRetries: cfg.Goals.MaxUpdateRetries,
		BaseDelay:  cfg.Goals.RetryBaseDelay,
	})

	// Services
	ownerID := cfg.Device.OwnerID
	ratioSvc := ratio.NewService(log, ratioRepo, ledgerTx)
	ledgerSvc := ledger.NewService(log, stashRepo, ledgerTx, cfg.Ledger, ownerID)
	// The local stash is read through the ledger so the configured bowl
	// default applies everywhere.
	attrSvc := attribution.NewService(log, activities, ratioRepo, ledgerSvc, ledgerSvc, ledgerTx, ownerID)

	resolver := window.NewResolver(sessions, cfg.Windows, cfg.Device.Timezone)
	distSvc := distribution.NewService(log, resolver, activities, ratioRepo, ledgerSvc)

	goalSvc := goal.NewService(log, goals, events, activities, goalTx, goal.NewBroker(log), cfg.Goals)
	trackerSvc := tracker.NewService(log, attrSvc, goalSvc, ledgerSvc, distSvc, sessions, ownerID)

	return &Services{
		Ratios:       ratioSvc,
		Ledger:       ledgerSvc,
		Attribution:  attrSvc,
		Distribution: distSvc,
		Goals:        goalSvc,
		Tracker:      trackerSvc,
	}
}
