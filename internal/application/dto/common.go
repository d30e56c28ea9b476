package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/ledger"
)

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Quantity aceita número ou string JSON ("2", 2.5, "2,5"). Valor ausente ou
// não numérico vira zero; a validação de faixa acontece no caso de uso.
type Quantity struct {
	decimal.Decimal
}

// UnmarshalJSON nunca falha: delega a coerção leniente ao pacote ledger.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		q.Decimal = decimal.Zero
		return nil
	}
	q.Decimal = ledger.CoerceQuantity(s)
	return nil
}
