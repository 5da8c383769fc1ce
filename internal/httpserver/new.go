package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"home-inventory/config"
	itemRepo "home-inventory/internal/item/repository"
	"home-inventory/pkg/imagestore"
	"home-inventory/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Item domain
	itemRepo   itemRepo.Repository
	imageStore imagestore.Store
	uploadDir  string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Item domain
	ItemRepo   itemRepo.Repository
	ImageStore imagestore.Store
	UploadDir  string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		itemRepo:    cfg.ItemRepo,
		imageStore:  cfg.ImageStore,
		uploadDir:   cfg.UploadDir,
	}

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
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.itemRepo == nil {
		return errors.New("item repository is required")
	}
	if srv.imageStore == nil {
		return errors.New("image store is required")
	}
	return nil
}
