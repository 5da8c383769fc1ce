package usecase

import (
	"context"
	"strings"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	it, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if it.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update modifies an existing Item. Empty input fields keep their current
// value; new image uploads replace the previous refs wholesale.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	name := existing.Name
	if input.Name != "" {
		name = strings.TrimSpace(input.Name)
		if name == "" {
			return item.UpdateItemOutput{}, item.ErrInvalidName
		}
	}

	images := existing.Images
	if len(input.Images) > 0 {
		refs, err := uc.saveImages(ctx, input.Images)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update saveImages: %v", err)
			return item.UpdateItemOutput{}, err
		}
		images = refs
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        name,
		Description: uc.coalesce(input.Description, existing.Description),
		Room:        uc.coalesce(strings.TrimSpace(input.Room), existing.Room),
		Location:    uc.coalesce(input.Location, existing.Location),
		Category:    uc.coalesce(strings.TrimSpace(input.Category), existing.Category),
		Tags:        uc.coalesce(input.Tags, existing.Tags),
		Images:      images,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when not found —
// deleting an absent id is an error, never a silent no-op.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFound
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
