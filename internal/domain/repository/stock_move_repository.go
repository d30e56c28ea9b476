package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
)

// StockMoveRepository porta de persistência para o livro de movimentações.
// O livro é append-only: movimentos nunca são atualizados, apenas criados
// e, quando necessário, excluídos.
type StockMoveRepository interface {
	Create(move *entity.StockMove) error
	GetByID(id string) (*entity.StockMove, error)
	Delete(id string) error
	// ListRecent lista as movimentações mais recentes primeiro, com o nome
	// do produto resolvido via join.
	ListRecent(limit int) ([]*entity.StockMove, error)
	ListByProduct(productID string) ([]*entity.StockMove, error)
	// BalanceByProduct soma o livro de um produto no banco:
	// Σ(IN) − Σ(OUT) + Σ(ADJUST com sinal).
	BalanceByProduct(productID string) (decimal.Decimal, error)
	// ListBalances lê a visão de saldo por produto (todos os produtos,
	// inclusive os sem movimentação, com saldo 0).
	ListBalances() ([]*entity.ProductBalance, error)
}
