package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Global-Manu-Man/cnk-ceneka/docs"

	"github.com/Global-Manu-Man/cnk-ceneka/controllers"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/middleware"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.Default()

	// CORS, open to any origin like the public listing frontends expect
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unknown routes answer with the envelope, not gin's default 404
	r.NoRoute(func(c *gin.Context) {
		response.Fail(c, code.ErrRouteNotFound)
	})

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures every API route
func registerRoutes(r *gin.Engine, serviceContainer *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, serviceContainer)
	registerAuthenticatedRoutes(api, serviceContainer)
}

// registerPublicRoutes registers routes that need no token
func registerPublicRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	// health
	api.GET("/ping", controllers.HandleHealthFunc(serviceContainer))

	// internal token issuance, rate limited per IP
	api.POST("/auth/internal/token",
		middleware.IPRateLimiter(5, 10),
		controllers.HandleAuthFunc(serviceContainer, "generateInternalToken"))

	// property reads
	api.GET("/properties", controllers.HandlePropertyFunc(serviceContainer, "getProperties"))
	api.GET("/properties/:id", controllers.HandlePropertyFunc(serviceContainer, "getProperty"))

	// catalog and location reads
	catalogs := api.Group("/properties/catalogs")
	catalogs.GET("/property-types", controllers.HandleCatalogFunc(serviceContainer, services.CatalogPropertyType, "list"))
	catalogs.GET("/property-types/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogPropertyType, "get"))
	catalogs.GET("/sale-types", controllers.HandleCatalogFunc(serviceContainer, services.CatalogSaleType, "list"))
	catalogs.GET("/sale-types/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogSaleType, "get"))
	catalogs.GET("/legal-statuses", controllers.HandleCatalogFunc(serviceContainer, services.CatalogLegalStatus, "list"))
	catalogs.GET("/legal-statuses/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogLegalStatus, "get"))
	catalogs.GET("/states", controllers.HandleLocationFunc(serviceContainer, "getStates"))
	catalogs.GET("/municipalities", controllers.HandleLocationFunc(serviceContainer, "getMunicipalities"))
	catalogs.GET("/colonies", controllers.HandleLocationFunc(serviceContainer, "getColonies"))

	// postal code resolution, rate limited per IP
	api.GET("/postal-codes/:codigo_postal",
		middleware.IPRateLimiter(10, 20),
		controllers.HandlePostalCodeFunc(serviceContainer, "getPostalCode"))
}

// registerAuthenticatedRoutes registers routes guarded by the JWT middleware
func registerAuthenticatedRoutes(api *gin.RouterGroup, serviceContainer *container.ServiceContainer) {
	protected := api.Group("")
	protected.Use(middleware.Authentication(serviceContainer))

	// property mutations
	protected.POST("/properties", controllers.HandlePropertyFunc(serviceContainer, "createProperty"))
	protected.PUT("/properties/:id", controllers.HandlePropertyFunc(serviceContainer, "updateProperty"))
	protected.DELETE("/properties/:id", controllers.HandlePropertyFunc(serviceContainer, "deleteProperty"))

	// feature sub-resource
	protected.POST("/properties/features", controllers.HandleFeatureFunc(serviceContainer, "replaceFeatures"))
	protected.GET("/properties/features", controllers.HandleFeatureFunc(serviceContainer, "getAllFeatures"))
	protected.GET("/properties/:id/features", controllers.HandleFeatureFunc(serviceContainer, "getFeaturesByProperty"))
	protected.PUT("/properties/features/:id", controllers.HandleFeatureFunc(serviceContainer, "updateFeature"))
	protected.DELETE("/properties/features/:id", controllers.HandleFeatureFunc(serviceContainer, "deleteFeature"))

	// catalog mutations
	catalogs := protected.Group("/properties/catalogs")
	catalogs.POST("/property-types", controllers.HandleCatalogFunc(serviceContainer, services.CatalogPropertyType, "create"))
	catalogs.PUT("/property-types/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogPropertyType, "update"))
	catalogs.DELETE("/property-types/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogPropertyType, "delete"))
	catalogs.POST("/sale-types", controllers.HandleCatalogFunc(serviceContainer, services.CatalogSaleType, "create"))
	catalogs.PUT("/sale-types/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogSaleType, "update"))
	catalogs.DELETE("/sale-types/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogSaleType, "delete"))
	catalogs.POST("/legal-statuses", controllers.HandleCatalogFunc(serviceContainer, services.CatalogLegalStatus, "create"))
	catalogs.PUT("/legal-statuses/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogLegalStatus, "update"))
	catalogs.DELETE("/legal-statuses/:id", controllers.HandleCatalogFunc(serviceContainer, services.CatalogLegalStatus, "delete"))

	// location mutations
	catalogs.POST("/states", controllers.HandleLocationFunc(serviceContainer, "createState"))
	catalogs.PUT("/states/:id", controllers.HandleLocationFunc(serviceContainer, "updateState"))
	catalogs.DELETE("/states/:id", controllers.HandleLocationFunc(serviceContainer, "deleteState"))
	catalogs.POST("/municipalities", controllers.HandleLocationFunc(serviceContainer, "createMunicipality"))
	catalogs.PUT("/municipalities/:id", controllers.HandleLocationFunc(serviceContainer, "updateMunicipality"))
	catalogs.DELETE("/municipalities/:id", controllers.HandleLocationFunc(serviceContainer, "deleteMunicipality"))
	catalogs.POST("/colonies", controllers.HandleLocationFunc(serviceContainer, "createColony"))
	catalogs.PUT("/colonies/:id", controllers.HandleLocationFunc(serviceContainer, "updateColony"))
	catalogs.DELETE("/colonies/:id", controllers.HandleLocationFunc(serviceContainer, "deleteColony"))

	// media
	protected.POST("/media/upload", controllers.HandleMediaFunc(serviceContainer, "uploadImage"))
	protected.GET("/media/images", controllers.HandleMediaFunc(serviceContainer, "listImages"))
}
