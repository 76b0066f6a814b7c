package repository

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"
)

// DashboardStats aggregates the headline numbers shown when the admin
// dashboard loads.
type DashboardStats struct {
	TotalServices     int64 `json:"total_services"`
	TotalCustomers    int64 `json:"total_customers"`
	TotalReservations int64 `json:"total_reservations"`
	TotalRevenue      int64 `json:"total_revenue"`
}

// StatsRepo computes dashboard aggregates.
type StatsRepo struct {
	db *sql.DB
}

// NewStatsRepo returns a StatsRepo bound to the given database.
func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{db: db} }

// Dashboard runs the four independent aggregate queries concurrently
// and returns once all have finished. Any failing query fails the
// whole call.
func (r *StatsRepo) Dashboard(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	count := func(query string, dest *int64) func() error {
		return func() error {
			var n sql.NullInt64
			if err := r.db.QueryRowContext(gctx, query).Scan(&n); err != nil {
				return err
			}
			*dest = n.Int64
			return nil
		}
	}

	g.Go(count("SELECT COUNT(*) FROM services", &stats.TotalServices))
	g.Go(count("SELECT COUNT(*) FROM customers", &stats.TotalCustomers))
	g.Go(count("SELECT COUNT(*) FROM reservations", &stats.TotalReservations))
	g.Go(count("SELECT SUM(price) FROM reservations WHERE payment_status='paid'", &stats.TotalRevenue))

	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}
