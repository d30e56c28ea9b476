package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MoveTypeIN     = "IN"     // entrada
	MoveTypeOUT    = "OUT"    // saída
	MoveTypeADJUST = "ADJUST" // ajuste (quantidade com sinal)
)

// StockMove representa uma movimentação do livro de estoque.
// Imutável depois de criada; a exclusão é o único evento que a altera,
// e também afeta o saldo derivado.
// Quantity é positiva para IN/OUT; para ADJUST carrega o sinal digitado.
type StockMove struct {
	ID        string
	ProductID string
	MoveType  string
	Quantity  decimal.Decimal
	Reason    string
	CreatedAt time.Time
	CreatedBy string

	// ProductName vem do join com products nos listados (não persiste).
	ProductName string
}

// ValidMoveType informa se t é um tipo de movimentação conhecido.
func ValidMoveType(t string) bool {
	switch t {
	case MoveTypeIN, MoveTypeOUT, MoveTypeADJUST:
		return true
	}
	return false
}
