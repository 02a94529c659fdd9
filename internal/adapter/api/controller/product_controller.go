package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/dto"
	"github.com/docebom/pdv-local/internal/dataset"
	productdomain "github.com/docebom/pdv-local/internal/domain/product"
	"github.com/docebom/pdv-local/pkg/ai"
	"github.com/docebom/pdv-local/pkg/logger"
)

// ProductController gerencia as requisições do catálogo de produtos
type ProductController struct {
	data   *dataset.Dataset
	ai     *ai.Client
	logger logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(data *dataset.Dataset, aiClient *ai.Client, logger logger.Logger) *ProductController {
	return &ProductController{
		data:   data,
		ai:     aiClient,
		logger: logger,
	}
}

// List lista o catálogo de produtos
func (c *ProductController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.data.Products())
}

// Create cria um novo produto
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, req.Category, req.Price, req.CostPrice, req.Stock)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}

	p.Description = req.Description
	p.Barcode = req.Barcode
	p.Supplier = req.Supplier
	p.Unit = req.Unit
	p.ImageURL = req.ImageURL

	c.data.SaveProduct(*p)
	ctx.JSON(http.StatusCreated, p)
}

// Update edita um produto existente
func (c *ProductController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, ok := c.data.FindProduct(id); !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", id))
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p := productdomain.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Category:    req.Category,
		Description: req.Description,
		Stock:       req.Stock,
		Barcode:     req.Barcode,
		Supplier:    req.Supplier,
		Unit:        req.Unit,
		ImageURL:    req.ImageURL,
	}

	c.data.SaveProduct(p)
	ctx.JSON(http.StatusOK, p)
}

// Describe gera uma descrição de divulgação para o produto via IA
func (c *ProductController) Describe(ctx *gin.Context) {
	if c.ai == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "IA não configurada", "defina GEMINI_API_KEY"))
		return
	}

	var req dto.DescribeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	description := c.ai.GenerateProductDescription(ctx.Request.Context(), req.Name, req.Category, req.Price)
	ctx.JSON(http.StatusOK, dto.DescribeResponse{Description: description})
}
