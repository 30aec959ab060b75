package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/kdelarosa/deliverytrack/internal/server/http/handlers"
	"github.com/kdelarosa/deliverytrack/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DeliveryFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/by_driver", orderHandler.ByDriver)
	orders.GET("/by_status", orderHandler.ByStatus)
	orders.GET("/search", orderHandler.Search)
	orders.GET("/:id", orderHandler.Retrieve)
	orders.PUT("/:id", orderHandler.Replace)
	orders.PATCH("/:id", orderHandler.PartialUpdate)
	orders.DELETE("/:id", orderHandler.Delete)
	orders.PATCH("/:id/update_status", orderHandler.UpdateStatus)

	return engine
}
