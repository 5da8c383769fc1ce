package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	Name        string
	Description string
	Room        string
	Location    string
	Category    string
	Tags        string
	Images      []string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// ListItemsOptions holds filter and ordering parameters for listing Items.
// Zero-value fields are not applied.
type ListItemsOptions struct {
	Room         string // exact match
	Category     string // exact match
	Keyword      string // case-insensitive substring over name/description/room/category
	FavoriteOnly bool
	OrderBy      string // SQL order clause; defaults to created_at ASC, id ASC
	Limit        int    // 0 = unlimited
}

// UpdateItemOptions holds the full replacement field set for an existing
// Item. Partial-update coalescing happens in the usecase layer.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Description string
	Room        string
	Location    string
	Category    string
	Tags        string
	Images      []string
}
