package entity

import "github.com/shopspring/decimal"

// ProductBalance é uma linha da visão de saldo por produto
// (equivalente lógico da projeção do pacote ledger, materializada no banco).
type ProductBalance struct {
	ProductID string
	Name      string
	Category  string
	Balance   decimal.Decimal
}
