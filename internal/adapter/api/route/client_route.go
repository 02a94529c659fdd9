package route

import (
	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/controller"
)

// RegisterClientRoutes registra as rotas do cadastro de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	{
		clients.GET("", clientController.List)
		clients.POST("", clientController.Create)
		clients.PUT("/:id", clientController.Update)
	}
}
