package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um orçamento. A progressão é livre: qualquer status
// pode ir para qualquer outro por escolha explícita do usuário.
const (
	StatusOrcamento = "Orçamento"
	StatusAnalise   = "Análise"
	StatusProducao  = "Produção"
	StatusMontagem  = "Montagem"
	StatusEntregue  = "Entregue"
)

// QuoteStatuses lista os status aceitos, na ordem usual de exibição.
var QuoteStatuses = []string{
	StatusOrcamento,
	StatusAnalise,
	StatusProducao,
	StatusMontagem,
	StatusEntregue,
}

// ValidQuoteStatus informa se s é um status conhecido.
func ValidQuoteStatus(s string) bool {
	for _, st := range QuoteStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Quote representa um orçamento (proposta de preço para um cliente).
// Total é um cache desnormalizado da soma dos subtotais dos itens,
// recalculado e regravado a cada escrita; nunca é fonte de verdade.
type Quote struct {
	ID          string
	ClientID    string
	Status      string
	QuoteDate   *time.Time
	OrderNumber int64 // identificador sequencial de exibição
	Total       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// ClientName vem do join com clients nos listados (não persiste).
	ClientName string
}
