package route

import (
	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/controller"
)

// RegisterProfileRoutes registra as rotas do perfil da loja
func RegisterProfileRoutes(r *gin.RouterGroup, profileController *controller.ProfileController) {
	profile := r.Group("/profile")
	{
		profile.GET("", profileController.Get)
		profile.PUT("", profileController.Update)
	}
}
