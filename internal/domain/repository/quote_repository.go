package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
)

// QuoteRepository porta de persistência para orçamentos.
type QuoteRepository interface {
	// Create persiste o cabeçalho e preenche ID e OrderNumber (sequência do banco).
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	// List devolve orçamentos mais recentes primeiro, com o nome do cliente via join.
	List(limit, offset int) ([]*entity.Quote, error)
	Update(quote *entity.Quote) error
	// UpdateTotal regrava o cache desnormalizado do total.
	UpdateTotal(quoteID string, total decimal.Decimal) error
	Count() (int, error)
	// SumTotals soma o total de todos os orçamentos (painel).
	SumTotals() (decimal.Decimal, error)
}

// QuoteItemRepository porta de persistência para itens de orçamento.
type QuoteItemRepository interface {
	// Create persiste o item; o subtotal é coluna gerada pelo banco e
	// volta preenchido em item.Subtotal.
	Create(item *entity.QuoteItem) error
	GetByID(id string) (*entity.QuoteItem, error)
	ListByQuote(quoteID string) ([]*entity.QuoteItem, error)
	Delete(id string) error
	// SumByQuote soma os subtotais no banco (fonte de verdade do total).
	SumByQuote(quoteID string) (decimal.Decimal, error)
}
