package route

import (
	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/controller"
)

// RegisterReportRoutes registra as rotas de resumo e relatório de desempenho
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportController.Summary)
		reports.GET("/performance", reportController.Performance)
	}
}
