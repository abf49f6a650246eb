package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	imageHTTP "hardware-inventory/internal/image/delivery/http"
	"hardware-inventory/internal/middleware"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.admin)

	srv.registerValidators()
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

// registerValidators makes binding errors name fields by their form keys.
func (srv HTTPServer) registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(model.FieldName)
	}
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(srv.recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.LimitBody(srv.bodyLimit))
	srv.gin.Use(srv.accessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

// recovery turns a panic into a logged 500 with the standard envelope.
func (srv HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		err := fmt.Errorf("panic: %v", rec)
		srv.l.Errorf(c.Request.Context(), "httpserver.recovery %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
	})
}

// accessLog writes one line per request through the service logger.
func (srv HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		srv.l.Infof(c.Request.Context(), "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	root := srv.gin.Group("")

	img := srv.setupImageDomain(ctx)
	if srv.localImages != nil {
		imageHTTP.RegisterRoutes(srv.gin, srv.localImages.PublicPrefix, srv.localImages.Root)
		srv.l.Infof(ctx, "Serving images from %s at %s", srv.localImages.Root, srv.localImages.PublicPrefix)
	}

	if err := srv.setupCategoryDomain(ctx, root, mw, img); err != nil {
		return err
	}
	if err := srv.setupItemDomain(ctx, root, mw, img); err != nil {
		return err
	}

	return nil
}
