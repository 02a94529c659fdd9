package route

import (
	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.GET("", productController.List)
		products.POST("", productController.Create)
		products.PUT("/:id", productController.Update)
		products.POST("/describe", productController.Describe)
	}
}
