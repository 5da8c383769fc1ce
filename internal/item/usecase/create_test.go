package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

func TestCreate(t *testing.T) {
	t.Run("Blank Name Rejected", func(t *testing.T) {
		called := false
		r := &mockRepository{
			createItemFunc: func(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
				called = true
				return item.Item{}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		_, err := uc.Create(context.Background(), item.CreateItemInput{Name: "   "})
		if !errors.Is(err, item.ErrInvalidName) {
			t.Errorf("expected ErrInvalidName, got %v", err)
		}
		if called {
			t.Errorf("repository must not be touched on invalid input")
		}
	})

	t.Run("Name And Grouping Keys Trimmed", func(t *testing.T) {
		var got repo.CreateItemOptions
		r := &mockRepository{
			createItemFunc: func(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
				got = opt
				return item.Item{ID: "id-1", Name: opt.Name}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		out, err := uc.Create(context.Background(), item.CreateItemInput{
			Name:     "  Reading Lamp  ",
			Room:     " living room ",
			Category: " lighting ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Reading Lamp" {
			t.Errorf("expected trimmed name, got %q", got.Name)
		}
		if got.Room != "living room" || got.Category != "lighting" {
			t.Errorf("expected trimmed room/category, got %q / %q", got.Room, got.Category)
		}
		if out.Item.ID != "id-1" {
			t.Errorf("expected created item in output, got %+v", out.Item)
		}
	})

	t.Run("Image Save Failure Aborts Create", func(t *testing.T) {
		created := false
		r := &mockRepository{
			createItemFunc: func(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
				created = true
				return item.Item{}, nil
			},
		}
		s := &mockImageStore{
			saveFunc: func(ctx context.Context, fh *multipart.FileHeader) (string, error) {
				return "", errors.New("disk full")
			},
		}
		uc := newTestUseCase(r, s)
		_, err := uc.Create(context.Background(), item.CreateItemInput{
			Name:   "Lamp",
			Images: []*multipart.FileHeader{{Filename: "lamp.jpg"}},
		})
		if err == nil {
			t.Fatalf("expected image save error")
		}
		if created {
			t.Errorf("item must not be persisted when an image save fails")
		}
	})

	t.Run("Image Refs Stored In Upload Order", func(t *testing.T) {
		var got repo.CreateItemOptions
		r := &mockRepository{
			createItemFunc: func(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
				got = opt
				return item.Item{ID: "id-2", Images: opt.Images}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		_, err := uc.Create(context.Background(), item.CreateItemInput{
			Name: "Lamp",
			Images: []*multipart.FileHeader{
				{Filename: "front.jpg"},
				{Filename: "back.jpg"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Images) != 2 || got.Images[0] != "/uploads/front.jpg" || got.Images[1] != "/uploads/back.jpg" {
			t.Errorf("expected ordered refs, got %v", got.Images)
		}
	})
}
