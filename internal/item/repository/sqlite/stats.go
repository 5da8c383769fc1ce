package sqlite

import (
	"context"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// CollectStats aggregates the whole catalog. Computed fresh on every call —
// the catalog is small enough that a cache would only add invalidation bugs.
func (r *implRepository) CollectStats(ctx context.Context) (item.StatsSnapshot, error) {
	const totalsQuery = `
		SELECT
			COUNT(*),
			COUNT(DISTINCT CASE WHEN room != '' THEN room END),
			COALESCE(SUM(favorite), 0),
			COALESCE(SUM(view_count), 0)
		FROM items`

	snapshot := item.StatsSnapshot{CategoryCounts: make(map[string]int)}
	err := r.db.QueryRowContext(ctx, totalsQuery).Scan(
		&snapshot.TotalItems, &snapshot.TotalRooms,
		&snapshot.FavoriteCount, &snapshot.TotalViews,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s totals: %v", r.dsn("CollectStats"), err)
		return item.StatsSnapshot{}, repo.ErrFailedToAggregate
	}

	const categoriesQuery = `
		SELECT category, COUNT(*)
		FROM items
		WHERE category != ''
		GROUP BY category`

	rows, err := r.db.QueryContext(ctx, categoriesQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s categories: %v", r.dsn("CollectStats"), err)
		return item.StatsSnapshot{}, repo.ErrFailedToAggregate
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CollectStats"), err)
			return item.StatsSnapshot{}, repo.ErrFailedToAggregate
		}
		snapshot.CategoryCounts[category] = count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CollectStats"), err)
		return item.StatsSnapshot{}, repo.ErrFailedToAggregate
	}
	return snapshot, nil
}
