package http

import (
	"github.com/gin-gonic/gin"

	"home-inventory/internal/item"
)

// processCreateReq binds the multipart create form, including any uploaded
// image files.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "item.http.processCreateReq bind: %v", err)
		return req, item.ErrInvalidPayload
	}
	return req, nil
}

// processUpdateReq binds the multipart update form + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "item.http.processUpdateReq bind: %v", err)
		return req, item.ErrInvalidPayload
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, item.ErrInvalidPayload
	}
	return req, nil
}

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, item.ErrInvalidPayload
	}
	return req, nil
}

// processPopularReq binds the popular-listing query parameters.
func (h *handler) processPopularReq(c *gin.Context) (popularReq, error) {
	var req popularReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, item.ErrInvalidPayload
	}
	return req, nil
}

// processToggleFavoriteReq binds the explicit favorite flag from the query
// string; the parameter is mandatory.
func (h *handler) processToggleFavoriteReq(c *gin.Context) (item.ToggleFavoriteInput, error) {
	var req toggleFavoriteReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "item.http.processToggleFavoriteReq bind: %v", err)
		return item.ToggleFavoriteInput{}, item.ErrInvalidPayload
	}
	id := c.Param("id")
	if id == "" {
		return item.ToggleFavoriteInput{}, item.ErrInvalidPayload
	}
	return item.ToggleFavoriteInput{ID: id, Favorite: *req.Favorite}, nil
}
