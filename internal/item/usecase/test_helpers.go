package usecase

import (
	"context"
	"mime/multipart"

	"home-inventory/internal/item"
	repo "home-inventory/internal/item/repository"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepository implements repository.Repository with overridable funcs.
// Unset funcs return zero values so tests only wire what they assert on.
type mockRepository struct {
	createItemFunc    func(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error)
	getOneItemFunc    func(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error)
	listItemsFunc     func(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error)
	updateItemFunc    func(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error)
	deleteItemFunc    func(ctx context.Context, id string) error
	listRoomsFunc     func(ctx context.Context) ([]string, error)
	setFavoriteFunc   func(ctx context.Context, id string, favorite bool) (item.Item, error)
	incrementViewFunc func(ctx context.Context, id string) (item.Item, error)
	collectStatsFunc  func(ctx context.Context) (item.StatsSnapshot, error)
}

func (m *mockRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if m.createItemFunc != nil {
		return m.createItemFunc(ctx, opt)
	}
	return item.Item{}, nil
}

func (m *mockRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	if m.getOneItemFunc != nil {
		return m.getOneItemFunc(ctx, opt)
	}
	return item.Item{}, nil
}

func (m *mockRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	if m.listItemsFunc != nil {
		return m.listItemsFunc(ctx, opt)
	}
	return nil, nil
}

func (m *mockRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	if m.updateItemFunc != nil {
		return m.updateItemFunc(ctx, opt)
	}
	return item.Item{}, nil
}

func (m *mockRepository) DeleteItem(ctx context.Context, id string) error {
	if m.deleteItemFunc != nil {
		return m.deleteItemFunc(ctx, id)
	}
	return nil
}

func (m *mockRepository) ListRooms(ctx context.Context) ([]string, error) {
	if m.listRoomsFunc != nil {
		return m.listRoomsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) SetFavorite(ctx context.Context, id string, favorite bool) (item.Item, error) {
	if m.setFavoriteFunc != nil {
		return m.setFavoriteFunc(ctx, id, favorite)
	}
	return item.Item{}, nil
}

func (m *mockRepository) IncrementView(ctx context.Context, id string) (item.Item, error) {
	if m.incrementViewFunc != nil {
		return m.incrementViewFunc(ctx, id)
	}
	return item.Item{}, nil
}

func (m *mockRepository) CollectStats(ctx context.Context) (item.StatsSnapshot, error) {
	if m.collectStatsFunc != nil {
		return m.collectStatsFunc(ctx)
	}
	return item.StatsSnapshot{}, nil
}

// mockImageStore implements imagestore.Store with an overridable func.
type mockImageStore struct {
	saveFunc func(ctx context.Context, fh *multipart.FileHeader) (string, error)
}

func (m *mockImageStore) Save(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, fh)
	}
	return "/uploads/" + fh.Filename, nil
}

func newTestUseCase(r *mockRepository, s *mockImageStore) *implUseCase {
	if r == nil {
		r = &mockRepository{}
	}
	if s == nil {
		s = &mockImageStore{}
	}
	return New(r, s, &mockLogger{})
}
