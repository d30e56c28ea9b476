package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/analytics"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
)

// DashboardHandler trata a rota do painel (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Painel inicial
// @Description  Contadores de clientes, produtos e orçamentos, soma dos orçamentos e últimas movimentações.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
