package usecase

import (
	"context"
	"errors"
	"testing"

	"home-inventory/internal/item"
)

func TestStats(t *testing.T) {
	t.Run("Snapshot Passed Through", func(t *testing.T) {
		r := &mockRepository{
			collectStatsFunc: func(ctx context.Context) (item.StatsSnapshot, error) {
				return item.StatsSnapshot{
					TotalItems:     3,
					TotalRooms:     2,
					FavoriteCount:  1,
					TotalViews:     7,
					CategoryCounts: map[string]int{"furniture": 2, "lighting": 1},
				}, nil
			},
		}
		uc := newTestUseCase(r, nil)
		out, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Stats.TotalItems != 3 || out.Stats.TotalViews != 7 {
			t.Errorf("unexpected snapshot: %+v", out.Stats)
		}
		if out.Stats.CategoryCounts["furniture"] != 2 {
			t.Errorf("expected 2 furniture items, got %d", out.Stats.CategoryCounts["furniture"])
		}
	})

	t.Run("Category Map Never Nil", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		out, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Stats.CategoryCounts == nil {
			t.Errorf("expected empty map, got nil")
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		r := &mockRepository{
			collectStatsFunc: func(ctx context.Context) (item.StatsSnapshot, error) {
				return item.StatsSnapshot{}, errors.New("aggregate failed")
			},
		}
		uc := newTestUseCase(r, nil)
		if _, err := uc.Stats(context.Background()); err == nil {
			t.Errorf("expected error")
		}
	})
}
