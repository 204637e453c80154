package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
)

// ServiceContainer wires all services behind one injected handle. It is
// built once at startup and shared read-only by every request.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Ambient services
	authService  services.InterfaceAuthService
	redisService services.InterfaceRedisService

	// External collaborators
	mediaService      services.InterfaceMediaService
	postalCodeService services.InterfacePostalCodeService

	// Domain services
	propertyService services.InterfacePropertyService
	featureService  services.InterfaceFeatureService
	catalogService  services.InterfaceCatalogService
	locationService services.InterfaceLocationService

	mu sync.RWMutex
}

// NewServiceContainer creates and initializes the service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) (*ServiceContainer, error) {
	if db == nil {
		panic("database handle is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	c := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	if err := c.initializeServices(); err != nil {
		return nil, err
	}
	return c, nil
}

// initializeServices constructs every service in dependency order
func (c *ServiceContainer) initializeServices() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.authService = services.NewAuthService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)

	media, err := services.NewMediaService(c.config)
	if err != nil {
		return err
	}
	c.mediaService = media
	c.postalCodeService = services.NewPostalCodeService(c.config, c.redisService)

	c.featureService = services.NewFeatureService(c.db, c.config)
	c.propertyService = services.NewPropertyService(c.db, c.config, c.featureService)
	c.catalogService = services.NewCatalogService(c.db, c.config)
	c.locationService = services.NewLocationService(c.db, c.config)

	return nil
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetAuthService returns the auth service
func (c *ServiceContainer) GetAuthService() services.InterfaceAuthService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authService
}

// GetRedisService returns the Redis cache service
func (c *ServiceContainer) GetRedisService() services.InterfaceRedisService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redisService
}

// GetMediaService returns the media storage service
func (c *ServiceContainer) GetMediaService() services.InterfaceMediaService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mediaService
}

// GetPostalCodeService returns the postal code lookup service
func (c *ServiceContainer) GetPostalCodeService() services.InterfacePostalCodeService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.postalCodeService
}

// GetPropertyService returns the property service
func (c *ServiceContainer) GetPropertyService() services.InterfacePropertyService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.propertyService
}

// GetFeatureService returns the feature service
func (c *ServiceContainer) GetFeatureService() services.InterfaceFeatureService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.featureService
}

// GetCatalogService returns the catalog service
func (c *ServiceContainer) GetCatalogService() services.InterfaceCatalogService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalogService
}

// GetLocationService returns the location service
func (c *ServiceContainer) GetLocationService() services.InterfaceLocationService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locationService
}

// Close releases held resources at process shutdown
func (c *ServiceContainer) Close() error {
	if c.redisService != nil {
		_ = c.redisService.Close()
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
