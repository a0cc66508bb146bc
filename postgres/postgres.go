package postgres

import (
	"context"

	"github.com/ONSdigital/dp-applications-api/config"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/avast/retry-go/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const driverName = "postgres"

// Postgres represents the applications datastore held in PostgreSQL
type Postgres struct {
	config.PostgresConfig

	db *sqlx.DB
}

// Init connects to the database and configures the pool. The connection is
// retried so the service can start while the database is still coming up.
func (p *Postgres) Init(ctx context.Context) error {
	dsn := p.EnsureSSLMode()

	db, err := retry.DoWithData(
		func() (*sqlx.DB, error) {
			connectCtx, cancel := context.WithTimeout(ctx, p.ConnectTimeout)
			defer cancel()
			return sqlx.ConnectContext(connectCtx, driverName, dsn)
		},
		retry.Context(ctx),
		retry.Attempts(p.ConnectRetries),
	)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(p.MaxOpenConns)
	p.db = db
	return nil
}

// Close represents the database pool closing within the context deadline
func (p *Postgres) Close(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- p.db.Close()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Checker is called by the healthcheck library to check the health state of this postgres instance
func (p *Postgres) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	if err := p.db.PingContext(ctx); err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	return state.Update(healthcheck.StatusOK, "postgres is ok", 0)
}

// queryContext bounds a store query with the configured query timeout
func (p *Postgres) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.QueryTimeout)
}
