package item

import (
	"mime/multipart"
	"time"
)

// CategoryFurniture is the distinguished category value driving the
// room-furniture listing.
const CategoryFurniture = "furniture"

// --- Item Domain Model ---

// Item is a single cataloged belonging. Room and Category are free-form
// grouping keys, not separate entities.
type Item struct {
	ID          string
	Name        string
	Description string
	Room        string
	Location    string
	Category    string
	Tags        string
	Images      []string
	Favorite    bool
	ViewCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StatsSnapshot is a point-in-time aggregate summary over the whole catalog.
type StatsSnapshot struct {
	TotalItems     int
	TotalRooms     int
	FavoriteCount  int
	TotalViews     int
	CategoryCounts map[string]int
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Description string
	Room        string
	Location    string
	Category    string
	Tags        string
	Images      []*multipart.FileHeader
}

// UpdateItemInput is a partial patch: empty fields keep their current value.
type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Room        string
	Location    string
	Category    string
	Tags        string
	Images      []*multipart.FileHeader
}

type SearchItemsInput struct {
	Keyword string
}

type PopularItemsInput struct {
	Limit int
}

// ToggleFavoriteInput carries the exact flag value to set — this is a set,
// not a flip, matching the client contract.
type ToggleFavoriteInput struct {
	ID       string
	Favorite bool
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
	Total int
}

type ListRoomsOutput struct {
	Rooms []string
}

type StatsOutput struct {
	Stats StatsSnapshot
}
