package usecase

import (
	"context"

	"home-inventory/internal/item"
)

// Stats computes a fresh aggregate snapshot from store state.
func (uc *implUseCase) Stats(ctx context.Context) (item.StatsOutput, error) {
	snapshot, err := uc.repo.CollectStats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CollectStats: %v", err)
		return item.StatsOutput{}, err
	}
	if snapshot.CategoryCounts == nil {
		snapshot.CategoryCounts = map[string]int{}
	}
	return item.StatsOutput{Stats: snapshot}, nil
}
