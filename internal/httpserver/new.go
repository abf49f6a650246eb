package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"hardware-inventory/config"
	"hardware-inventory/internal/image"
	imageRepo "hardware-inventory/internal/image/repository"
	"hardware-inventory/pkg/log"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	// maxMultipartMemory bounds how much of a form is buffered in memory before spilling to disk.
	maxMultipartMemory = 8 << 20
	// formSlack is the room left above the image size limit for the other form fields and
	// multipart framing. Oversized images still reach validation and get a field error.
	formSlack = 1 << 20
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	bodyLimit   int64

	// Infrastructure
	db        *sql.DB
	txTimeout time.Duration
	admin     config.AdminConfig

	// Images
	imageRepo   imageRepo.Repository
	imageConfig image.Config
	localImages *config.LocalStorageConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// TrustedProxies are the only peers whose X-Forwarded-For is used for client addresses.
	TrustedProxies []string

	DB        *sql.DB
	TxTimeout time.Duration
	Admin     config.AdminConfig

	ImageRepo   imageRepo.Repository
	ImageConfig image.Config
	// LocalImages, when set, serves stored images from disk.
	LocalImages *config.LocalStorageConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.MaxMultipartMemory = maxMultipartMemory
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         engine,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		txTimeout:   cfg.TxTimeout,
		admin:       cfg.Admin,
		imageRepo:   cfg.ImageRepo,
		imageConfig: cfg.ImageConfig,
		localImages: cfg.LocalImages,
	}
	srv.bodyLimit = srv.imageConfig.Limit() + formSlack

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.imageRepo == nil {
		return errors.New("image repository is required")
	}
	if srv.admin.Password == "" {
		return errors.New("admin password is required")
	}
	return nil
}
