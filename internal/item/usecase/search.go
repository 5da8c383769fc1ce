package usecase

import (
	"context"
	"strings"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// Search performs a case-insensitive substring lookup over the item text
// fields. A blank keyword returns an empty result rather than the full
// catalog.
func (uc *implUseCase) Search(ctx context.Context, input item.SearchItemsInput) (item.ListItemsOutput, error) {
	keyword := strings.TrimSpace(input.Keyword)
	if keyword == "" {
		return item.ListItemsOutput{Items: []item.Item{}}, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Keyword: keyword})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items: items,
		Total: len(items),
	}, nil
}
