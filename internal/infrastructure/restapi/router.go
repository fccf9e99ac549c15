package restapi

import (
	"net/http"

	"supply_checker/docs"
	"supply_checker/internal/infrastructure/configloader"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const swaggerSpecRoute = "/docs/swagger.yaml"

// SetupRouter builds the Gin engine with middleware and all routes.
func SetupRouter(supplyHandler *SupplyHandler, cfg *configloader.Config, zapLogger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	router.Use(ZapLoggerMiddleware(zapLogger))
	router.Use(MetricsMiddleware())
	router.Use(gin.Recovery())

	router.GET("/api/", supplyHandler.GetSupplyHandler)
	router.GET("/api", supplyHandler.GetSupplyHandler)
	router.GET("/healthz", HealthHandler)

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if cfg.Swagger.Enabled {
		if cfg.Swagger.SpecFile != "" {
			router.StaticFile(swaggerSpecRoute, cfg.Swagger.SpecFile)
		} else {
			router.GET(swaggerSpecRoute, func(c *gin.Context) {
				c.Data(http.StatusOK, "application/yaml", docs.SwaggerYAML)
			})
		}
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(swaggerSpecRoute)))
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
