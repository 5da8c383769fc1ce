package usecase

import (
	"context"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

const (
	// DefaultPopularLimit caps ListPopular when the caller does not ask for
	// a specific size — five matches the "recently hot" shelf on the home
	// screen.
	DefaultPopularLimit = 5

	// maxPopularLimit bounds how much a single request can pull.
	maxPopularLimit = 100
)

// ToggleFavorite sets the favorite flag to the exact value supplied by the
// caller; repeating a call is a no-op rather than a flip.
func (uc *implUseCase) ToggleFavorite(ctx context.Context, input item.ToggleFavoriteInput) (item.UpdateItemOutput, error) {
	it, err := uc.repo.SetFavorite(ctx, input.ID, input.Favorite)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleFavorite SetFavorite: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if it.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// IncrementView advances the view counter by exactly one.
func (uc *implUseCase) IncrementView(ctx context.Context, id string) (item.UpdateItemOutput, error) {
	it, err := uc.repo.IncrementView(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.IncrementView: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if it.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// ListFavorites returns the favorite items, most recently touched first.
func (uc *implUseCase) ListFavorites(ctx context.Context) (item.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		FavoriteOnly: true,
		OrderBy:      "updated_at DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListFavorites ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items, Total: len(items)}, nil
}

// ListPopular returns items by descending view count, ties broken by
// creation time.
func (uc *implUseCase) ListPopular(ctx context.Context, input item.PopularItemsInput) (item.ListItemsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		OrderBy: "view_count DESC, created_at ASC",
		Limit:   limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPopular ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items, Total: len(items)}, nil
}
