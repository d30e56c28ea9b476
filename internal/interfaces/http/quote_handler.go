package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/billing"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
)

// QuoteHandler trata as rotas de orçamentos, itens e PDF (protegido).
type QuoteHandler struct {
	uc    *billing.QuoteUseCase
	pdfUC *billing.QuotePDFUseCase
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(uc *billing.QuoteUseCase, pdfUC *billing.QuotePDFUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Criar orçamento
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateQuoteRequest  true  "client_id obrigatório; status opcional"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.CreateQuote(c.UserContext(), in)
	if err != nil {
		return h.mapQuoteError(c, err, "cliente não encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List godoc
// @Summary      Listar orçamentos
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máx. 100"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {object}  dto.QuoteListResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.ListQuotes(c.UserContext(), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter orçamento com itens
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do orçamento"
// @Success      200  {object}  dto.QuoteDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.GetQuote(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.mapQuoteError(c, err, "orçamento não encontrado")
	}
	return c.JSON(quote)
}

// Update godoc
// @Summary      Atualizar orçamento
// @Description  Campos nulos ficam como estão; quote_date vazia limpa a data.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID do orçamento"
// @Param        body  body  dto.UpdateQuoteRequest  true  "client_id, status, quote_date (2006-01-02)"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [put]
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	quote, err := h.uc.UpdateQuote(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.mapQuoteError(c, err, "orçamento não encontrado")
	}
	return c.JSON(quote)
}

// AddItem godoc
// @Summary      Incluir item no orçamento
// @Description  unit_price em texto ("199,90", "R$ 199,90", "199.90"); vazio usa o preço de catálogo.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID do orçamento"
// @Param        body  body  dto.AddQuoteItemRequest  true  "product_id, quantity, unit_price"
// @Success      201  {object}  dto.QuoteItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddQuoteItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.uc.AddItem(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.mapQuoteError(c, err, "orçamento ou produto não encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// RemoveItem godoc
// @Summary      Remover item do orçamento
// @Description  O total do cabeçalho é recalculado a partir dos itens restantes.
// @Tags         quotes
// @Security     BearerAuth
// @Param        id      path  string  true  "ID do orçamento"
// @Param        itemId  path  string  true  "ID do item"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items/{itemId} [delete]
func (h *QuoteHandler) RemoveItem(c *fiber.Ctx) error {
	err := h.uc.RemoveItem(c.UserContext(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return h.mapQuoteError(c, err, "item não encontrado nesse orçamento")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Baixar proposta em PDF
// @Tags         quotes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "ID do orçamento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadPDF(c *fiber.Ctx) error {
	filename, content, err := h.pdfUC.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.mapQuoteError(c, err, "orçamento não encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(content)
}

func (h *QuoteHandler) mapQuoteError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "status desconhecido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos: confira cliente, produto, quantidade e preço"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
