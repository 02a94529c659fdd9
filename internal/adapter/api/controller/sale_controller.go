package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/dto"
	"github.com/docebom/pdv-local/internal/dataset"
	saledomain "github.com/docebom/pdv-local/internal/domain/sale"
	"github.com/docebom/pdv-local/pkg/logger"
)

// SaleController gerencia as requisições do histórico de vendas
type SaleController struct {
	data   *dataset.Dataset
	logger logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(data *dataset.Dataset, logger logger.Logger) *SaleController {
	return &SaleController{
		data:   data,
		logger: logger,
	}
}

// List lista o histórico de vendas (mais recentes primeiro)
func (c *SaleController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.data.Sales())
}

// Create finaliza uma venda: monta o carrinho a partir do catálogo, calcula
// totais, abate estoque e grava no histórico
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]saledomain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		p, ok := c.data.FindProduct(item.ProductID)
		if !ok {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "produto não encontrado", item.ProductID))
			return
		}
		items = append(items, saledomain.CartItem{Product: p, Quantity: item.Quantity})
	}

	s, err := c.data.FinalizeSale(req.ClientID, items, req.PaymentMethod, req.PaymentTerms)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao finalizar venda", err.Error()))
		return
	}

	c.logger.Info("venda finalizada", "id", s.ID, "total", s.Total, "items", len(s.Items))
	ctx.JSON(http.StatusCreated, s)
}
