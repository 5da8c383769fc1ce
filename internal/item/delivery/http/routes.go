package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Static paths
// (search, rooms, favorites, popular, stats) are registered alongside the
// :id parameter routes; gin's tree resolves them before the wildcard.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)

		items.GET("/search", h.Search)
		items.GET("/rooms", h.ListRooms)
		items.GET("/rooms/:room/furniture", h.FurnitureInRoom)
		items.GET("/room/:room", h.ItemsInRoom)
		items.GET("/favorites", h.ListFavorites)
		items.GET("/popular", h.ListPopular)
		items.GET("/stats", h.Stats)

		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/favorite", h.ToggleFavorite)
		items.POST("/:id/view", h.IncrementView)
	}
}
