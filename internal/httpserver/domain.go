package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catHTTP "hardware-inventory/internal/category/delivery/http"
	catRepo "hardware-inventory/internal/category/repository/sqlstore"
	catUC "hardware-inventory/internal/category/usecase"
	"hardware-inventory/internal/image"
	imageUC "hardware-inventory/internal/image/usecase"
	itemHTTP "hardware-inventory/internal/item/delivery/http"
	itemRepo "hardware-inventory/internal/item/repository/sqlstore"
	itemUC "hardware-inventory/internal/item/usecase"
	"hardware-inventory/internal/middleware"
	"hardware-inventory/pkg/sqldb"
)

// setupImageDomain builds the image lifecycle manager shared by the record domains.
func (srv HTTPServer) setupImageDomain(ctx context.Context) image.UseCase {
	uc := imageUC.New(srv.imageRepo, srv.l, srv.imageConfig)
	srv.l.Infof(ctx, "Image domain ready (backend: %s, size limit: %d bytes)", srv.imageRepo.Scheme(), srv.imageConfig.Limit())
	return uc
}

// setupCategoryDomain initializes the hardware type domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupCategoryDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, img image.UseCase) error {
	// 1. Repositories. Delete spans both stores.
	repo := catRepo.New(srv.db, srv.l)
	items := itemRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := catUC.New(repo, items, img, sqldb.NewTransactor(srv.db), srv.txTimeout, srv.l)

	// 3. HTTP Handler
	h := catHTTP.New(srv.l, uc, img)

	// 4. Routes: /hardware_types
	catHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Hardware type domain registered")
	return nil
}

// setupItemDomain initializes the hardware domain and registers its routes.
func (srv HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware, img image.UseCase) error {
	repo := itemRepo.New(srv.db, srv.l)
	cats := catRepo.New(srv.db, srv.l)

	uc := itemUC.New(repo, cats, img, srv.l)

	h := itemHTTP.New(srv.l, uc, img)

	// Routes: /hardware and /hardware_types/:id/hardware
	itemHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Hardware domain registered")
	return nil
}
