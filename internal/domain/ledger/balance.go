// Package ledger implementa a projeção de saldo do livro de estoque
// (serviço de domínio, sem dependências de infraestrutura).
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
)

// Balance deriva o saldo atual de um produto a partir do conjunto de
// movimentações: Σ(IN) − Σ(OUT) + Σ(ADJUST com sinal). A ordem das
// movimentações é irrelevante para a soma; conjunto vazio → 0.
// Um tipo de movimento desconhecido contribui 0 em vez de propagar erro,
// para manter a exibição de saldo resiliente a dados parciais.
func Balance(moves []entity.StockMove) decimal.Decimal {
	total := decimal.Zero
	for _, m := range moves {
		total = total.Add(Contribution(m))
	}
	return total
}

// Contribution devolve a parcela de uma movimentação no saldo do produto.
func Contribution(m entity.StockMove) decimal.Decimal {
	switch m.MoveType {
	case entity.MoveTypeIN:
		return m.Quantity
	case entity.MoveTypeOUT:
		return m.Quantity.Neg()
	case entity.MoveTypeADJUST:
		// ajuste é correção direta: entra com o sinal digitado
		return m.Quantity
	default:
		return decimal.Zero
	}
}

// BalanceByProduct projeta o saldo de cada produto presente no conjunto.
func BalanceByProduct(moves []entity.StockMove) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, m := range moves {
		out[m.ProductID] = out[m.ProductID].Add(Contribution(m))
	}
	return out
}

// CoerceQuantity normaliza uma representação numérica qualquer (string com
// vírgula ou ponto, float, int, decimal) para decimal. Valor ausente ou
// não numérico vira 0; caminhos de escrita validam a faixa depois.
func CoerceQuantity(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero
		}
		s = strings.Replace(s, ",", ".", 1)
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(n)
	case float32:
		return decimal.NewFromFloat32(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	default:
		return decimal.Zero
	}
}
