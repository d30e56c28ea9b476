package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/billing"
	"github.com/kvmarcenaria/marcenaria-api/internal/application/inventory"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*StockTxRunner)(nil)
var _ billing.TxRunner = (*QuoteTxRunner)(nil)

// StockTxRunner executa callbacks do motor de estoque dentro de uma
// transação PostgreSQL.
type StockTxRunner struct {
	pool *pgxpool.Pool
}

// NewStockTxRunner constrói o runner com o pool.
func NewStockTxRunner(pool *pgxpool.Pool) *StockTxRunner {
	return &StockTxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e
// faz Commit ou Rollback.
func (r *StockTxRunner) Run(ctx context.Context, fn func(
	moveRepo repository.StockMoveRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	moveRepo := NewStockMoveRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(moveRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// QuoteTxRunner executa callbacks de orçamento dentro de uma transação
// PostgreSQL (escrita de item + regravação do total como unidade).
type QuoteTxRunner struct {
	pool *pgxpool.Pool
}

// NewQuoteTxRunner constrói o runner com o pool.
func NewQuoteTxRunner(pool *pgxpool.Pool) *QuoteTxRunner {
	return &QuoteTxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e
// faz Commit ou Rollback.
func (r *QuoteTxRunner) Run(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quoteRepo := NewQuoteRepository(tx)
	itemRepo := NewQuoteItemRepository(tx)

	if err := fn(quoteRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
