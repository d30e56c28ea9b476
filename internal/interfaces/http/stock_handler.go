package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/inventory"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
)

// StockHandler trata as rotas do livro de estoque (protegido).
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterMove godoc
// @Summary      Registrar movimentação
// @Description  IN/OUT exigem quantidade > 0; ADJUST aceita quantidade com sinal.
// @Description  OUT acima do saldo atual é rejeitada e nada é gravado.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterMoveRequest  true  "product_id, move_type, quantity, reason"
// @Success      201   {object}  dto.StockMoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMove(c *fiber.Ctx) error {
	var in dto.RegisterMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	move, err := h.uc.RegisterMove(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "saída maior que o saldo atual"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "selecione o produto e informe uma quantidade válida para o tipo de movimentação"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(move)
}

// ListRecent godoc
// @Summary      Listar movimentações recentes
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "padrão 40, máx. 200"
// @Success      200  {array}  dto.StockMoveResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListRecent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "40"))
	moves, err := h.uc.ListRecent(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(moves)
}

// DeleteMove godoc
// @Summary      Excluir movimentação
// @Description  O saldo derivado passa a refletir as linhas restantes.
// @Tags         stock
// @Security     BearerAuth
// @Param        id  path  string  true  "ID da movimentação"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/movements/{id} [delete]
func (h *StockHandler) DeleteMove(c *fiber.Ctx) error {
	if err := h.uc.DeleteMove(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListBalances godoc
// @Summary      Saldo por produto
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProductBalanceResponse
// @Router       /api/stock/balances [get]
func (h *StockHandler) ListBalances(c *fiber.Ctx) error {
	balances, err := h.uc.ListBalances(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(balances)
}

// History godoc
// @Summary      Histórico de um produto
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.StockHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/products/{id}/history [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(history)
}
