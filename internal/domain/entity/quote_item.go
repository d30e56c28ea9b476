package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItem representa uma linha de um orçamento.
// UnitPrice é o preço capturado no momento da inclusão, independente do
// preço atual de catálogo. Subtotal (quantity * unit_price) é uma coluna
// gerada pelo banco; o cliente nunca o escreve.
type QuoteItem struct {
	ID        string
	QuoteID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	CreatedAt time.Time

	// Campos do join com products nos listados (não persistem).
	ProductName     string
	ProductCategory string
}
