package http

import (
	"mime/multipart"
	"time"

	"home-inventory/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Name        string                  `form:"name"        binding:"required,min=1,max=255"`
	Description string                  `form:"description" binding:"max=1000"`
	Room        string                  `form:"room"        binding:"max=255"`
	Location    string                  `form:"location"    binding:"max=255"`
	Category    string                  `form:"category"    binding:"max=255"`
	Tags        string                  `form:"tags"        binding:"max=1000"`
	Images      []*multipart.FileHeader `form:"images"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Room:        r.Room,
		Location:    r.Location,
		Category:    r.Category,
		Tags:        r.Tags,
		Images:      r.Images,
	}
}

// updateReq is a partial patch; empty form fields keep the stored values.
type updateReq struct {
	ID          string                  `form:"-"` // populated from URI param
	Name        string                  `form:"name"        binding:"omitempty,min=1,max=255"`
	Description string                  `form:"description" binding:"max=1000"`
	Room        string                  `form:"room"        binding:"max=255"`
	Location    string                  `form:"location"    binding:"max=255"`
	Category    string                  `form:"category"    binding:"max=255"`
	Tags        string                  `form:"tags"        binding:"max=1000"`
	Images      []*multipart.FileHeader `form:"images"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Room:        r.Room,
		Location:    r.Location,
		Category:    r.Category,
		Tags:        r.Tags,
		Images:      r.Images,
	}
}

type searchReq struct {
	Keyword string `form:"keyword"`
}

func (r searchReq) toInput() item.SearchItemsInput {
	return item.SearchItemsInput{Keyword: r.Keyword}
}

type popularReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (r popularReq) toInput() item.PopularItemsInput {
	return item.PopularItemsInput{Limit: r.Limit}
}

// toggleFavoriteReq carries the explicit flag value; a pointer so a missing
// query parameter is rejected instead of silently defaulting to false.
type toggleFavoriteReq struct {
	Favorite *bool `form:"favorite" binding:"required"`
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Room        string    `json:"room"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Tags        string    `json:"tags"`
	Images      []string  `json:"images"`
	Favorite    bool      `json:"favorite"`
	ViewCount   int       `json:"view_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newItemResp(it item.Item) itemResp {
	images := it.Images
	if images == nil {
		images = []string{}
	}
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Room:        it.Room,
		Location:    it.Location,
		Category:    it.Category,
		Tags:        it.Tags,
		Images:      images,
		Favorite:    it.Favorite,
		ViewCount:   it.ViewCount,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func newItemListResp(items []item.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	return listResp{
		Items: newItemListResp(out.Items),
		Total: out.Total,
	}
}

type roomsResp struct {
	Rooms []string `json:"rooms"`
}

func (h *handler) newRoomsResp(out item.ListRoomsOutput) roomsResp {
	rooms := out.Rooms
	if rooms == nil {
		rooms = []string{}
	}
	return roomsResp{Rooms: rooms}
}

type statsResp struct {
	TotalItems     int            `json:"total_items"`
	TotalRooms     int            `json:"total_rooms"`
	FavoriteCount  int            `json:"favorite_count"`
	TotalViews     int            `json:"total_views"`
	CategoryCounts map[string]int `json:"category_counts"`
}

func (h *handler) newStatsResp(out item.StatsOutput) statsResp {
	return statsResp{
		TotalItems:     out.Stats.TotalItems,
		TotalRooms:     out.Stats.TotalRooms,
		FavoriteCount:  out.Stats.FavoriteCount,
		TotalViews:     out.Stats.TotalViews,
		CategoryCounts: out.Stats.CategoryCounts,
	}
}
