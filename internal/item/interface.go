package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Item CRUD
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) error

	// Derived views
	Search(ctx context.Context, input SearchItemsInput) (ListItemsOutput, error)
	ListRooms(ctx context.Context) (ListRoomsOutput, error)
	ItemsInRoom(ctx context.Context, room string) (ListItemsOutput, error)
	FurnitureInRoom(ctx context.Context, room string) (ListItemsOutput, error)

	// Engagement
	ToggleFavorite(ctx context.Context, input ToggleFavoriteInput) (UpdateItemOutput, error)
	IncrementView(ctx context.Context, id string) (UpdateItemOutput, error)
	ListFavorites(ctx context.Context) (ListItemsOutput, error)
	ListPopular(ctx context.Context, input PopularItemsInput) (ListItemsOutput, error)

	// Aggregation
	Stats(ctx context.Context) (StatsOutput, error)
}
