package httpserver

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zuqiartcraft/Product-Website/internal/storage"
)

// buildRouter wires routes for the storefront and the admin API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.AdminSvc == nil || deps.Auth == nil || deps.Checkout == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(opts.CORSOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	if deps.Uploads != nil {
		router.Static(storage.URLPrefix, deps.Uploads.Dir())
	}

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.GET("/payment-config", paymentConfigHandler(opts.Payment))

		api.POST("/checkout", openCheckoutHandler(deps.Checkout, deps.CatalogSvc))
		api.GET("/checkout/:id", getCheckoutHandler(deps.Checkout))
		api.POST("/checkout/:id/select", selectMethodHandler(deps.Checkout))
		api.POST("/checkout/:id/back", backHandler(deps.Checkout))
		api.POST("/checkout/:id/next", nextHandler(deps.Checkout))
		api.POST("/checkout/:id/submit", submitHandler(deps.Checkout, opts.Payment.WhatsAppURL))
		api.DELETE("/checkout/:id", closeCheckoutHandler(deps.Checkout))

		api.POST("/admin/login", loginHandler(deps.Auth))

		admin := api.Group("/admin", authMiddleware(deps.Auth))
		{
			admin.GET("/products", adminListHandler(deps.AdminSvc))
			admin.POST("/products", adminCreateHandler(deps.AdminSvc))
			admin.PUT("/products/:id", adminUpdateHandler(deps.AdminSvc))
			admin.PATCH("/products/:id", adminToggleHandler(deps.AdminSvc))
			admin.DELETE("/products/:id", adminDeleteHandler(deps.AdminSvc))
			admin.POST("/upload", adminUploadHandler(deps.Uploads))
		}
	}

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
