package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// SetFavorite sets the favorite flag to an explicit value (not a flip) and
// returns the updated Item, or the zero-value Item when the id is absent.
func (r *implRepository) SetFavorite(ctx context.Context, id string, favorite bool) (item.Item, error) {
	query := fmt.Sprintf(`
		UPDATE items
		SET favorite = ?, updated_at = ?
		WHERE id = ?
		RETURNING %s`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, favorite, time.Now().UTC(), id))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetFavorite"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// IncrementView advances the counter in a single UPDATE statement so
// concurrent increments on the same id cannot lose updates.
func (r *implRepository) IncrementView(ctx context.Context, id string) (item.Item, error) {
	query := fmt.Sprintf(`
		UPDATE items
		SET view_count = view_count + 1, updated_at = ?
		WHERE id = ?
		RETURNING %s`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, time.Now().UTC(), id))
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementView"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}
