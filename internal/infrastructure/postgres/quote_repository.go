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

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementação do porto QuoteRepository sobre PostgreSQL
// (usável com pool ou tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository constrói o adaptador de persistência para orçamentos.
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste o cabeçalho. ID e order_number vêm do banco
// (gen_random_uuid e sequência).
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (client_id, status, quote_date, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_number`
	err := r.q.QueryRow(context.Background(), query,
		quote.ClientID, quote.Status, quote.QuoteDate, quote.Total, quote.CreatedAt, quote.UpdatedAt,
	).Scan(&quote.ID, &quote.OrderNumber)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtém um orçamento com o nome do cliente.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT q.id, q.client_id, q.status, q.quote_date, q.order_number, q.total, q.created_at, q.updated_at, c.name
		FROM quotes q
		JOIN clients c ON c.id = q.client_id
		WHERE q.id = $1`
	var quote entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&quote.ID, &quote.ClientID, &quote.Status, &quote.QuoteDate, &quote.OrderNumber,
		&quote.Total, &quote.CreatedAt, &quote.UpdatedAt, &quote.ClientName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &quote, nil
}

// List lista orçamentos mais recentes primeiro, com paginação.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT q.id, q.client_id, q.status, q.quote_date, q.order_number, q.total, q.created_at, q.updated_at, c.name
		FROM quotes q
		JOIN clients c ON c.id = q.client_id
		ORDER BY q.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*entity.Quote
	for rows.Next() {
		var quote entity.Quote
		if err := rows.Scan(
			&quote.ID, &quote.ClientID, &quote.Status, &quote.QuoteDate, &quote.OrderNumber,
			&quote.Total, &quote.CreatedAt, &quote.UpdatedAt, &quote.ClientName,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, &quote)
	}
	return quotes, rows.Err()
}

// Update regrava o cabeçalho (cliente, status, data).
func (r *QuoteRepo) Update(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET client_id = $2, status = $3, quote_date = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.ClientID, quote.Status, quote.QuoteDate, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// UpdateTotal regrava o cache desnormalizado do total.
func (r *QuoteRepo) UpdateTotal(quoteID string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotes SET total = $2, updated_at = now() WHERE id = $1`,
		quoteID, total,
	)
	if err != nil {
		return fmt.Errorf("update quote total: %w", err)
	}
	return nil
}

// Count conta os orçamentos.
func (r *QuoteRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM quotes`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return n, nil
}

// SumTotals soma o total de todos os orçamentos.
func (r *QuoteRepo) SumTotals() (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM quotes`,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum quote totals: %w", err)
	}
	return sum, nil
}
