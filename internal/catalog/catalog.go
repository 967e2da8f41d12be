package catalog

import (
	"fmt"
	"os"

	httpadapter "storefront-api/internal/catalog/adapter/http"
	"storefront-api/internal/catalog/adapter/persistence/jsonfile"
	"storefront-api/internal/catalog/adapter/persistence/localdisk"
	"storefront-api/internal/catalog/config"
	"storefront-api/internal/catalog/usecase"
	"storefront-api/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
)

// Module wires the storefront content surface: the flat-file record store,
// the disk-backed media store, their usecases and the HTTP handler.
type Module struct {
	Config         *config.Config
	RecordStore    *jsonfile.Store
	MediaStore     *localdisk.MediaStore
	CatalogUsecase usecase.CatalogUsecase
	MediaUsecase   usecase.MediaUsecase
	Logger         logger.Logger
}

// NewModule creates and initializes the catalog module. A missing or invalid
// backing document is an error; the process is expected to treat it as fatal.
func NewModule(cfg *config.Config, log logger.Logger) (*Module, error) {
	log.Info("Initializing Catalog Module...")

	if cfg == nil {
		cfg = config.DefaultConfig()
		log.Info("No configuration provided, using defaults.")
	}

	recordStore, err := jsonfile.New(cfg.DataFile, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	mediaStore, err := localdisk.New(cfg.ProductUploadsDir(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to open media store: %w", err)
	}

	catalogUC := usecase.NewCatalogUsecase(recordStore, log)
	mediaUC := usecase.NewMediaUsecase(mediaStore, cfg.UploadMaxFiles, cfg.UploadMaxBytes, log)

	log.Info("Catalog module initialized successfully.")
	return &Module{
		Config:         cfg,
		RecordStore:    recordStore,
		MediaStore:     mediaStore,
		CatalogUsecase: catalogUC,
		MediaUsecase:   mediaUC,
		Logger:         log,
	}, nil
}

// RegisterRoutes registers the content CRUD routes, the media endpoints and
// static serving of stored images.
func (m *Module) RegisterRoutes(router fiber.Router) {
	router.Static("/uploads", m.Config.UploadsRoot)

	handler := httpadapter.NewCatalogHTTPHandler(m.CatalogUsecase, m.MediaUsecase, m.Logger)
	handler.RegisterRoutes(router)

	m.Logger.Info("Catalog HTTP routes registered.")
}

// HealthCheck verifies the module's backing stores are reachable.
func (m *Module) HealthCheck() error {
	if _, err := os.Stat(m.RecordStore.Path()); err != nil {
		return fmt.Errorf("backing document unavailable: %w", err)
	}
	if _, err := os.Stat(m.MediaStore.Dir()); err != nil {
		return fmt.Errorf("uploads directory unavailable: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the catalog module.
func (m *Module) Stop() error {
	m.Logger.Info("Catalog module stopped.")
	return nil
}
