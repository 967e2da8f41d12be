package di

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront-api/internal/catalog"
	"storefront-api/internal/catalog/config"
	"storefront-api/internal/shared/logger"
)

// Container represents a dependency injection container with proper lifecycle management
type Container struct {
	mu sync.RWMutex
	// Module instances
	CatalogModule *catalog.Module
	// Configuration
	CatalogConfig *config.Config
	// Logger
	Logger logger.Logger
}

// NewContainer creates a new DI container
func NewContainer() *Container {
	return &Container{}
}

// InitializeCatalog initializes the catalog module from configuration
func (c *Container) InitializeCatalog(cfg *config.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Logger == nil {
		c.Logger = logger.NewLogger()
	}
	c.CatalogConfig = cfg

	catalogModule, err := catalog.NewModule(cfg, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog module: %w", err)
	}

	c.CatalogModule = catalogModule
	return nil
}

// GetCatalogModule returns the catalog module instance
func (c *Container) GetCatalogModule() *catalog.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.CatalogModule
}

// HealthCheck performs health check on all registered modules
func (c *Container) HealthCheck(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.CatalogModule != nil {
		if err := c.CatalogModule.HealthCheck(); err != nil {
			return fmt.Errorf("catalog health check failed: %w", err)
		}
	}
	return nil
}

// Cleanup performs cleanup of modules in reverse order of initialization
func (c *Container) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.CatalogModule != nil {
		if err := c.CatalogModule.Stop(); err != nil {
			return fmt.Errorf("failed to stop catalog module: %w", err)
		}
		c.CatalogModule = nil
	}
	return nil
}

// Close gracefully shuts down all services in the container with timeout
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.Cleanup(ctx); err != nil {
		return fmt.Errorf("cleanup errors occurred: %w", err)
	}
	return nil
}
