package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/dto"
	"github.com/docebom/pdv-local/internal/dataset"
	clientdomain "github.com/docebom/pdv-local/internal/domain/client"
	"github.com/docebom/pdv-local/pkg/logger"
)

// ClientController gerencia as requisições do cadastro de clientes
type ClientController struct {
	data   *dataset.Dataset
	logger logger.Logger
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(data *dataset.Dataset, logger logger.Logger) *ClientController {
	return &ClientController{
		data:   data,
		logger: logger,
	}
}

// List lista os clientes cadastrados
func (c *ClientController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.data.Clients())
}

// Create cria um novo cliente
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cl, err := clientdomain.NewClient(req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	cl.Document = req.Document

	c.data.SaveClient(*cl)
	ctx.JSON(http.StatusCreated, cl)
}

// Update edita um cliente existente
func (c *ClientController) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, ok := c.data.FindClient(id); !ok {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", id))
		return
	}

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cl := clientdomain.Client{
		ID:       id,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		Document: req.Document,
	}

	c.data.SaveClient(cl)
	ctx.JSON(http.StatusOK, cl)
}
