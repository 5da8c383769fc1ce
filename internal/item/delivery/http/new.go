package http

import (
	"github.com/gin-gonic/gin"

	"home-inventory/internal/item"
	"home-inventory/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
	ListRooms(c *gin.Context)
	ItemsInRoom(c *gin.Context)
	FurnitureInRoom(c *gin.Context)
	ToggleFavorite(c *gin.Context)
	IncrementView(c *gin.Context)
	ListFavorites(c *gin.Context)
	ListPopular(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
