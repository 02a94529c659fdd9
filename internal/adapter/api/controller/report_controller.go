package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/dto"
	"github.com/docebom/pdv-local/internal/dataset"
	"github.com/docebom/pdv-local/pkg/ai"
	"github.com/docebom/pdv-local/pkg/logger"
)

// ReportController gerencia o resumo da loja e o relatório de desempenho
// gerado por IA
type ReportController struct {
	data   *dataset.Dataset
	ai     *ai.Client
	logger logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(data *dataset.Dataset, aiClient *ai.Client, logger logger.Logger) *ReportController {
	return &ReportController{
		data:   data,
		ai:     aiClient,
		logger: logger,
	}
}

// Summary retorna os totais exibidos na tela inicial
func (c *ReportController) Summary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		TotalRevenue: c.data.TotalRevenue(),
		TotalProfit:  c.data.TotalProfit(),
		Products:     len(c.data.Products()),
		Clients:      len(c.data.Clients()),
		Sales:        len(c.data.Sales()),
	})
}

// Performance agrega o histórico por mês e pede à IA uma análise narrativa.
// A chamada é síncrona do ponto de vista do cliente HTTP, mas nunca altera o
// estado do sistema: falha de IA vira texto genérico, não erro.
func (c *ReportController) Performance(ctx *gin.Context) {
	if c.ai == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "IA não configurada", "defina GEMINI_API_KEY"))
		return
	}

	periods := c.data.MonthlyPeriods()
	if len(periods) == 0 {
		periods = []dataset.Period{{Name: "Base"}}
	}

	input := make([]ai.SalesPeriod, 0, len(periods))
	for _, p := range periods {
		input = append(input, ai.SalesPeriod{
			Name:    p.Name,
			Revenue: p.Revenue,
			Profit:  p.Profit,
			Sales:   p.Sales,
		})
	}

	report := c.ai.GeneratePerformanceReport(ctx.Request.Context(), input)
	ctx.JSON(http.StatusOK, dto.ReportResponse{Report: report, Periods: periods})
}
