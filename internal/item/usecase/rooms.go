package usecase

import (
	"context"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// roomOrder lists rooms the way the home screen shows them: most recently
// touched items first.
const roomOrder = "updated_at DESC"

// ListRooms returns the distinct non-empty room labels, alphabetically.
// Rooms are a projection over item state — there is no Room entity.
func (uc *implUseCase) ListRooms(ctx context.Context) (item.ListRoomsOutput, error) {
	rooms, err := uc.repo.ListRooms(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRooms: %v", err)
		return item.ListRoomsOutput{}, err
	}
	return item.ListRoomsOutput{Rooms: rooms}, nil
}

// ItemsInRoom returns every item whose room label matches exactly.
func (uc *implUseCase) ItemsInRoom(ctx context.Context, room string) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Room:    room,
		OrderBy: roomOrder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ItemsInRoom ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items, Total: len(items)}, nil
}

// FurnitureInRoom narrows ItemsInRoom to furniture-category items. A room
// without furniture yields an empty list, not an error.
func (uc *implUseCase) FurnitureInRoom(ctx context.Context, room string) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Room:     room,
		Category: item.CategoryFurniture,
		OrderBy:  roomOrder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FurnitureInRoom ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items, Total: len(items)}, nil
}
