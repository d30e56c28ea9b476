package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

var _ repository.QuoteItemRepository = (*QuoteItemRepo)(nil)

// QuoteItemRepo implementação do porto QuoteItemRepository sobre PostgreSQL
// (usável com pool ou tx).
type QuoteItemRepo struct {
	q Querier
}

// NewQuoteItemRepository constrói o adaptador de persistência para itens de orçamento.
func NewQuoteItemRepository(q Querier) *QuoteItemRepo {
	return &QuoteItemRepo{q: q}
}

// Create persiste o item. subtotal é coluna gerada (quantity * unit_price)
// e volta preenchida junto com o id.
func (r *QuoteItemRepo) Create(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (quote_id, product_id, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, subtotal`
	err := r.q.QueryRow(context.Background(), query,
		item.QuoteID, item.ProductID, item.Quantity, item.UnitPrice, item.CreatedAt,
	).Scan(&item.ID, &item.Subtotal)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *QuoteItemRepo) GetByID(id string) (*entity.QuoteItem, error) {
	query := `
		SELECT i.id, i.quote_id, i.product_id, i.quantity, i.unit_price, i.subtotal, i.created_at, p.name, p.category
		FROM quote_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.id = $1`
	var it entity.QuoteItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.QuoteID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal,
		&it.CreatedAt, &it.ProductName, &it.ProductCategory,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote item: %w", err)
	}
	return &it, nil
}

// ListByQuote lista os itens de um orçamento na ordem de inclusão.
func (r *QuoteItemRepo) ListByQuote(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT i.id, i.quote_id, i.product_id, i.quantity, i.unit_price, i.subtotal, i.created_at, p.name, p.category
		FROM quote_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.quote_id = $1
		ORDER BY i.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	var items []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(
			&it.ID, &it.QuoteID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal,
			&it.CreatedAt, &it.ProductName, &it.ProductCategory,
		); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Delete exclui um item por ID.
func (r *QuoteItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote item: %w", err)
	}
	return nil
}

// SumByQuote soma os subtotais no banco (fonte de verdade do total).
func (r *QuoteItemRepo) SumByQuote(quoteID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(subtotal), 0) FROM quote_items WHERE quote_id = $1`,
		quoteID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum quote items: %w", err)
	}
	return sum, nil
}
