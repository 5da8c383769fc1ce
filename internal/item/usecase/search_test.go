package usecase

import (
	"context"
	"errors"
	"testing"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

func TestSearch(t *testing.T) {
	t.Run("Blank Keyword Returns Empty Result", func(t *testing.T) {
		called := false
		r := &mockRepository{
			listItemsFunc: func(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
				called = true
				return nil, nil
			},
		}
		uc := newTestUseCase(r, nil)
		out, err := uc.Search(context.Background(), item.SearchItemsInput{Keyword: "   "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Items == nil || len(out.Items) != 0 || out.Total != 0 {
			t.Errorf("expected empty result, got %+v", out)
		}
		if called {
			t.Errorf("repository must not be queried for a blank keyword")
		}
	})

	t.Run("Keyword Trimmed And Forwarded", func(t *testing.T) {
		var got repo.ListItemsOptions
		r := &mockRepository{
			listItemsFunc: func(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
				got = opt
				return []item.Item{{ID: "id-1"}, {ID: "id-2"}}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		out, err := uc.Search(context.Background(), item.SearchItemsInput{Keyword: "  lamp "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Keyword != "lamp" {
			t.Errorf("expected trimmed keyword, got %q", got.Keyword)
		}
		if out.Total != 2 {
			t.Errorf("expected total 2, got %d", out.Total)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		r := &mockRepository{
			listItemsFunc: func(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
				return nil, errors.New("query failed")
			},
		}
		uc := newTestUseCase(r, nil)
		if _, err := uc.Search(context.Background(), item.SearchItemsInput{Keyword: "lamp"}); err == nil {
			t.Errorf("expected repository error")
		}
	})
}
