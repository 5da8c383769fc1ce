package usecase

import (
	"context"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// List returns the whole catalog ordered by creation time.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items: items,
		Total: len(items),
	}, nil
}
