// Package quote implementa a agregação de totais de orçamento
// (serviço de domínio, sem dependências de infraestrutura).
package quote

import (
	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
)

// Total soma os itens de um orçamento: usa o subtotal calculado pelo banco
// quando presente e positivo, senão quantity × unit_price. Lista vazia → 0.
// Recalcular é idempotente; o total gravado no orçamento é sempre
// sobrescrito por este valor, nunca o contrário.
func Total(items []entity.QuoteItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineSubtotal(it))
	}
	return total
}

// LineSubtotal devolve o subtotal efetivo de uma linha.
func LineSubtotal(it entity.QuoteItem) decimal.Decimal {
	if it.Subtotal.Sign() > 0 {
		return it.Subtotal
	}
	return it.Quantity.Mul(it.UnitPrice)
}
