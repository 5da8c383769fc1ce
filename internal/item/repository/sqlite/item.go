package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

const itemColumns = `id, name, description, room, location, category, tags, images, favorite, view_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (item.Item, error) {
	var it item.Item
	var images string
	err := row.Scan(
		&it.ID, &it.Name, &it.Description, &it.Room, &it.Location, &it.Category,
		&it.Tags, &images, &it.Favorite, &it.ViewCount, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return item.Item{}, err
	}
	it.Images = splitImages(images)
	return it, nil
}

// Image refs are stored comma-joined; refs are opaque path strings that never
// contain commas themselves.
func joinImages(images []string) string {
	return strings.Join(images, ",")
}

func splitImages(images string) []string {
	if images == "" {
		return nil
	}
	return strings.Split(images, ",")
}

// CreateItem inserts a new Item row with a fresh uuid and store-owned
// timestamps, and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO items (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?, ?)
		RETURNING %s`, itemColumns, itemColumns)

	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.Name, opt.Description, opt.Room, opt.Location,
		opt.Category, opt.Tags, joinImages(opt.Images), now, now,
	)
	it, err := scanItem(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem retrieves a single Item by id.
// Returns zero-value Item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = ? LIMIT 1`, itemColumns)

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return item.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns the Items matching the options, in the requested order.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM items %s`, itemColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem replaces the caller-owned fields of an Item and refreshes
// updated_at. Returns the zero-value Item when the id does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	query := fmt.Sprintf(`
		UPDATE items
		SET name = ?, description = ?, room = ?, location = ?, category = ?, tags = ?, images = ?, updated_at = ?
		WHERE id = ?
		RETURNING %s`, itemColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Description, opt.Room, opt.Location, opt.Category,
		opt.Tags, joinImages(opt.Images), time.Now().UTC(), opt.ID,
	)
	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return it, nil
}

// DeleteItem removes an Item by id. Existence is checked by the caller.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListRooms returns the distinct non-empty room labels, alphabetically.
func (r *implRepository) ListRooms(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT room FROM items WHERE room != '' ORDER BY room`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRooms"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var rooms []string
	for rows.Next() {
		var room string
		if err := rows.Scan(&room); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListRooms"), err)
			return nil, repo.ErrFailedToList
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListRooms"), err)
		return nil, repo.ErrFailedToList
	}
	return rooms, nil
}
