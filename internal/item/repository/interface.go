package repository

import (
	"context"

	"home-inventory/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity and its
// derived views (rooms, search, engagement, stats).
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id string) error

	// ListRooms returns the distinct non-empty room labels, alphabetically.
	ListRooms(ctx context.Context) ([]string, error)

	// SetFavorite sets the favorite flag to an explicit value.
	// IncrementView advances view_count by exactly one; both return the
	// zero-value Item when the id does not exist.
	SetFavorite(ctx context.Context, id string, favorite bool) (item.Item, error)
	IncrementView(ctx context.Context, id string) (item.Item, error)

	// CollectStats aggregates the whole catalog in one pass.
	CollectStats(ctx context.Context) (item.StatsSnapshot, error)
}
