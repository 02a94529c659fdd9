package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docebom/pdv-local/internal/adapter/api/dto"
	"github.com/docebom/pdv-local/internal/dataset"
	profiledomain "github.com/docebom/pdv-local/internal/domain/profile"
	"github.com/docebom/pdv-local/pkg/logger"
)

// ProfileController gerencia as requisições do perfil da loja
type ProfileController struct {
	data   *dataset.Dataset
	logger logger.Logger
}

// NewProfileController cria uma nova instância de ProfileController
func NewProfileController(data *dataset.Dataset, logger logger.Logger) *ProfileController {
	return &ProfileController{
		data:   data,
		logger: logger,
	}
}

// Get retorna o perfil da loja
func (c *ProfileController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.data.Profile())
}

// Update substitui o perfil da loja por inteiro
func (c *ProfileController) Update(ctx *gin.Context) {
	var req dto.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	planStatus := profiledomain.PlanStatus(req.PlanStatus)
	switch planStatus {
	case profiledomain.PlanFree, profiledomain.PlanPremium, profiledomain.PlanPro:
	case "":
		planStatus = c.data.Profile().PlanStatus
	default:
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "plano inválido", req.PlanStatus))
		return
	}

	p := profiledomain.BusinessProfile{
		CompanyName: req.CompanyName,
		Document:    req.Document,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		LogoURL:     req.LogoURL,
		PixKey:      req.PixKey,
		PlanStatus:  planStatus,
		NextBilling: req.NextBilling,
	}

	c.data.SaveProfile(p)
	ctx.JSON(http.StatusOK, p)
}
