package route

import (
	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/controller"
)

// RegisterBackupRoutes registra as rotas de exportação e importação de backup
func RegisterBackupRoutes(r *gin.RouterGroup, backupController *controller.BackupController) {
	backups := r.Group("/backup")
	{
		backups.GET("/export", backupController.Export)
		backups.POST("/import", backupController.Import)
	}
}
