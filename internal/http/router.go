package http

import (
	"github.com/gin-gonic/gin"
	"github.com/odelgado/product-catalog/internal/config"
	"github.com/odelgado/product-catalog/internal/http/controller"
	"github.com/odelgado/product-catalog/internal/http/middleware"
)

// InitRouter mounts the catalog API on the given gin engine.
func InitRouter(_ *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.CORS())
	server.Use(middleware.RequestLogger())

	server.GET("/ping", ctr.Ping)

	// Product endpoints consumed by the catalog client
	products := server.Group("/bp/products")
	{
		products.GET("", productCtr.ListProducts)
		products.POST("", productCtr.CreateProduct)
		products.GET("/verification/:id", productCtr.VerifyProductID)
		products.PUT("/:id", productCtr.UpdateProduct)
		products.DELETE("/:id", productCtr.DeleteProduct)
	}

	return server
}
