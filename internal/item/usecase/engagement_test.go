package usecase

import (
	"context"
	"errors"
	"testing"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

func TestToggleFavorite(t *testing.T) {
	t.Run("Explicit Value Forwarded", func(t *testing.T) {
		var gotID string
		var gotFav bool
		r := &mockRepository{
			setFavoriteFunc: func(ctx context.Context, id string, favorite bool) (item.Item, error) {
				gotID, gotFav = id, favorite
				return item.Item{ID: id, Favorite: favorite}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		out, err := uc.ToggleFavorite(context.Background(), item.ToggleFavoriteInput{ID: "id-1", Favorite: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != "id-1" || !gotFav {
			t.Errorf("expected set favorite=true on id-1, got id=%q fav=%v", gotID, gotFav)
		}
		if !out.Item.Favorite {
			t.Errorf("expected updated item in output")
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.ToggleFavorite(context.Background(), item.ToggleFavoriteInput{ID: "missing", Favorite: true})
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestIncrementView(t *testing.T) {
	t.Run("Counter Advanced", func(t *testing.T) {
		r := &mockRepository{
			incrementViewFunc: func(ctx context.Context, id string) (item.Item, error) {
				return item.Item{ID: id, ViewCount: 4}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		out, err := uc.IncrementView(context.Background(), "id-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ViewCount != 4 {
			t.Errorf("expected view count 4, got %d", out.Item.ViewCount)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.IncrementView(context.Background(), "missing")
		if !errors.Is(err, item.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestListFavorites(t *testing.T) {
	var got repo.ListItemsOptions
	r := &mockRepository{
		listItemsFunc: func(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
			got = opt
			return []item.Item{{ID: "id-1", Favorite: true}}, nil
		},
	}
	uc := newTestUseCase(r, nil)
	out, err := uc.ListFavorites(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.FavoriteOnly {
		t.Errorf("expected favorite-only filter")
	}
	if got.OrderBy != "updated_at DESC" {
		t.Errorf("expected recency ordering, got %q", got.OrderBy)
	}
	if out.Total != 1 {
		t.Errorf("expected total 1, got %d", out.Total)
	}
}

func TestListPopular(t *testing.T) {
	capture := func(got *repo.ListItemsOptions) *mockRepository {
		return &mockRepository{
			listItemsFunc: func(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
				*got = opt
				return nil, nil
			},
		}
	}

	t.Run("Default Limit", func(t *testing.T) {
		var got repo.ListItemsOptions
		uc := newTestUseCase(capture(&got), nil)
		if _, err := uc.ListPopular(context.Background(), item.PopularItemsInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Limit != DefaultPopularLimit {
			t.Errorf("expected default limit %d, got %d", DefaultPopularLimit, got.Limit)
		}
		if got.OrderBy != "view_count DESC, created_at ASC" {
			t.Errorf("expected view-count ordering, got %q", got.OrderBy)
		}
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		var got repo.ListItemsOptions
		uc := newTestUseCase(capture(&got), nil)
		if _, err := uc.ListPopular(context.Background(), item.PopularItemsInput{Limit: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Limit != 3 {
			t.Errorf("expected limit 3, got %d", got.Limit)
		}
	})

	t.Run("Limit Capped", func(t *testing.T) {
		var got repo.ListItemsOptions
		uc := newTestUseCase(capture(&got), nil)
		if _, err := uc.ListPopular(context.Background(), item.PopularItemsInput{Limit: 10000}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Limit != 100 {
			t.Errorf("expected limit capped at 100, got %d", got.Limit)
		}
	})
}
