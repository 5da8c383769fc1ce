package usecase

import (
	"context"
	"strings"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// Create validates the draft, stores any uploaded images and persists the
// Item. Nothing is written when validation or an image save fails.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return item.CreateItemOutput{}, item.ErrInvalidName
	}

	refs, err := uc.saveImages(ctx, input.Images)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create saveImages: %v", err)
		return item.CreateItemOutput{}, err
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        name,
		Description: input.Description,
		Room:        strings.TrimSpace(input.Room),
		Location:    input.Location,
		Category:    strings.TrimSpace(input.Category),
		Tags:        input.Tags,
		Images:      refs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: it}, nil
}
