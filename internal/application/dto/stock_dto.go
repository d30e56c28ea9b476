package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMoveRequest body para POST /api/stock/movements.
// Para IN/OUT a quantidade deve ser > 0; para ADJUST carrega o sinal digitado.
type RegisterMoveRequest struct {
	ProductID string   `json:"product_id"`
	MoveType  string   `json:"move_type"`
	Quantity  Quantity `json:"quantity"`
	Reason    string   `json:"reason"`
}

// StockMoveResponse saída de uma movimentação.
type StockMoveResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	MoveType    string          `json:"move_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StockHistoryResponse movimentações de um produto com o saldo projetado
// sobre elas.
type StockHistoryResponse struct {
	ProductID string              `json:"product_id"`
	Balance   decimal.Decimal     `json:"balance"`
	Moves     []StockMoveResponse `json:"moves"`
}

// ProductBalanceResponse linha da visão de saldo por produto.
type ProductBalanceResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
}
