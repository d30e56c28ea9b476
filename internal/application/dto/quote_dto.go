package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest entrada para criar um orçamento.
type CreateQuoteRequest struct {
	ClientID string `json:"client_id"`
	Status   string `json:"status"`
}

// UpdateQuoteRequest entrada para atualizar o cabeçalho de um orçamento.
// QuoteDate em "2006-01-02"; string vazia limpa a data.
type UpdateQuoteRequest struct {
	ClientID  *string `json:"client_id"`
	Status    *string `json:"status"`
	QuoteDate *string `json:"quote_date"`
}

// AddQuoteItemRequest entrada para incluir um item no orçamento.
// UnitPrice é texto na notação da oficina ("199,90", "R$ 199,90", "199.90");
// o subtotal é calculado pelo banco, nunca enviado.
type AddQuoteItemRequest struct {
	ProductID string   `json:"product_id"`
	Quantity  Quantity `json:"quantity"`
	UnitPrice string   `json:"unit_price"`
}

// QuoteItemResponse saída de um item de orçamento.
type QuoteItemResponse struct {
	ID              string          `json:"id"`
	QuoteID         string          `json:"quote_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	ProductCategory string          `json:"product_category,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// QuoteResponse saída do cabeçalho de um orçamento.
type QuoteResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	Status      string          `json:"status"`
	QuoteDate   *time.Time      `json:"quote_date,omitempty"`
	OrderNumber int64           `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// QuoteDetailResponse cabeçalho + itens.
type QuoteDetailResponse struct {
	QuoteResponse
	Items []QuoteItemResponse `json:"items"`
}

// QuoteListResponse lista paginada de orçamentos.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
