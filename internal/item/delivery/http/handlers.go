package http

import (
	"github.com/gin-gonic/gin"

	"home-inventory/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a catalog item from a multipart form; image files are stored and referenced by path.
// @Tags        Items
// @Accept      mpfd
// @Produce     json
// @Param       name        formData string true  "Item name"
// @Param       description formData string false "Free-form description"
// @Param       room        formData string false "Room label"
// @Param       location    formData string false "Location within the room"
// @Param       category    formData string false "Category label"
// @Param       tags        formData string false "Comma-separated tags"
// @Param       images      formData file   false "Image files"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List all items
// @Description Returns the whole catalog ordered by creation time.
// @Tags        Items
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "item.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "item.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update via multipart form: empty fields keep their stored values, new image files replace the old refs.
// @Tags        Items
// @Accept      mpfd
// @Produce     json
// @Param       id          path     string true  "Item ID"
// @Param       name        formData string false "Item name"
// @Param       description formData string false "Free-form description"
// @Param       room        formData string false "Room label"
// @Param       location    formData string false "Location within the room"
// @Param       category    formData string false "Category label"
// @Param       tags        formData string false "Comma-separated tags"
// @Param       images      formData file   false "Replacement image files"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item; deleting an absent id is an error.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "item.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Search godoc
// @Summary     Search items
// @Description Case-insensitive substring search over name, description, room and category. A blank keyword returns an empty list.
// @Tags        Items
// @Produce     json
// @Param       keyword query string false "Search keyword"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.http.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListRooms godoc
// @Summary     List rooms
// @Description Returns the distinct non-empty room labels, alphabetically.
// @Tags        Rooms
// @Produce     json
// @Success     200 {object} roomsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/rooms [GET]
func (h *handler) ListRooms(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListRooms(ctx)
	if err != nil {
		h.l.Errorf(ctx, "item.http.ListRooms: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRoomsResp(output))
}

// ItemsInRoom godoc
// @Summary     List items in a room
// @Description Returns every item whose room label matches exactly, most recently touched first.
// @Tags        Rooms
// @Produce     json
// @Param       room path string true "Room label"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/room/{room} [GET]
func (h *handler) ItemsInRoom(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ItemsInRoom(ctx, c.Param("room"))
	if err != nil {
		h.l.Errorf(ctx, "item.http.ItemsInRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// FurnitureInRoom godoc
// @Summary     List furniture in a room
// @Description Narrows the room listing to furniture-category items; a room without furniture yields an empty list.
// @Tags        Rooms
// @Produce     json
// @Param       room path string true "Room label"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/rooms/{room}/furniture [GET]
func (h *handler) FurnitureInRoom(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.FurnitureInRoom(ctx, c.Param("room"))
	if err != nil {
		h.l.Errorf(ctx, "item.http.FurnitureInRoom: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ToggleFavorite godoc
// @Summary     Set the favorite flag
// @Description Sets the flag to the given boolean value; repeating the call is a no-op, not a flip.
// @Tags        Engagement
// @Produce     json
// @Param       id       path  string true "Item ID"
// @Param       favorite query bool   true "Flag value to set"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/favorite [POST]
func (h *handler) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processToggleFavoriteReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ToggleFavorite(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "item.http.ToggleFavorite: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// IncrementView godoc
// @Summary     Record a view
// @Description Advances the view counter by exactly one, even under concurrent calls.
// @Tags        Engagement
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/{id}/view [POST]
func (h *handler) IncrementView(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.IncrementView(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "item.http.IncrementView: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// ListFavorites godoc
// @Summary     List favorite items
// @Description Returns the favorite items, most recently touched first.
// @Tags        Engagement
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/favorites [GET]
func (h *handler) ListFavorites(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListFavorites(ctx)
	if err != nil {
		h.l.Errorf(ctx, "item.http.ListFavorites: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListPopular godoc
// @Summary     List popular items
// @Description Returns items by descending view count. Default limit 5, capped at 100.
// @Tags        Engagement
// @Produce     json
// @Param       limit query int false "Maximum number of items (default 5)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/popular [GET]
func (h *handler) ListPopular(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPopularReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ListPopular(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "item.http.ListPopular: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Catalog statistics
// @Description Aggregate counts computed fresh from store state.
// @Tags        Stats
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/items/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "item.http.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}
