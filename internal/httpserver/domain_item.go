package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "home-inventory/internal/item/delivery/http"
	itemUC "home-inventory/internal/item/usecase"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(repo, deps, srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := itemUC.New(srv.itemRepo, srv.imageStore, srv.l)
	h := itemHTTP.New(srv.l, uc)

	// Registers /api/items and its derived views.
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}
