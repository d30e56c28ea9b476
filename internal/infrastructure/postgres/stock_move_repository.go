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

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementação do porto StockMoveRepository sobre PostgreSQL
// (usável com pool ou tx).
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository constrói o adaptador de persistência do livro de estoque.
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// Create persiste uma movimentação.
func (r *StockMoveRepo) Create(move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (id, product_id, move_type, quantity, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.ProductID, move.MoveType, move.Quantity, move.Reason, move.CreatedAt, move.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *StockMoveRepo) GetByID(id string) (*entity.StockMove, error) {
	query := `
		SELECT m.id, m.product_id, m.move_type, m.quantity, m.reason, m.created_at, m.created_by, p.name
		FROM stock_moves m
		JOIN products p ON p.id = m.product_id
		WHERE m.id = $1`
	var m entity.StockMove
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.MoveType, &m.Quantity, &m.Reason, &m.CreatedAt, &m.CreatedBy, &m.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock move: %w", err)
	}
	return &m, nil
}

// Delete exclui uma movimentação. O saldo derivado passa a refletir as
// linhas restantes na próxima leitura.
func (r *StockMoveRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_moves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock move: %w", err)
	}
	return nil
}

// ListRecent lista as movimentações mais recentes primeiro.
func (r *StockMoveRepo) ListRecent(limit int) ([]*entity.StockMove, error) {
	query := `
		SELECT m.id, m.product_id, m.move_type, m.quantity, m.reason, m.created_at, m.created_by, p.name
		FROM stock_moves m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC
		LIMIT $1`
	return r.queryMoves(query, limit)
}

// ListByProduct lista todas as movimentações de um produto, mais antigas primeiro.
func (r *StockMoveRepo) ListByProduct(productID string) ([]*entity.StockMove, error) {
	query := `
		SELECT m.id, m.product_id, m.move_type, m.quantity, m.reason, m.created_at, m.created_by, p.name
		FROM stock_moves m
		JOIN products p ON p.id = m.product_id
		WHERE m.product_id = $1
		ORDER BY m.created_at ASC`
	return r.queryMoves(query, productID)
}

// BalanceByProduct soma o livro de um produto no banco.
func (r *StockMoveRepo) BalanceByProduct(productID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE move_type
			WHEN 'IN' THEN quantity
			WHEN 'OUT' THEN -quantity
			WHEN 'ADJUST' THEN quantity
		END), 0)
		FROM stock_moves WHERE product_id = $1`
	var balance decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance by product: %w", err)
	}
	return balance, nil
}

// ListBalances lê a visão stock_balances (todos os produtos, saldo 0 incluso).
func (r *StockMoveRepo) ListBalances() ([]*entity.ProductBalance, error) {
	query := `
		SELECT product_id, name, category, balance
		FROM stock_balances ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	var balances []*entity.ProductBalance
	for rows.Next() {
		var b entity.ProductBalance
		if err := rows.Scan(&b.ProductID, &b.Name, &b.Category, &b.Balance); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		balances = append(balances, &b)
	}
	return balances, rows.Err()
}

func (r *StockMoveRepo) queryMoves(query string, args ...any) ([]*entity.StockMove, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()

	var moves []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(&m.ID, &m.ProductID, &m.MoveType, &m.Quantity, &m.Reason, &m.CreatedAt, &m.CreatedBy, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		moves = append(moves, &m)
	}
	return moves, rows.Err()
}
