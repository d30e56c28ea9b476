package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kvmarcenaria/marcenaria-api/internal/application/dto"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/entity"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/ledger"
	"github.com/kvmarcenaria/marcenaria-api/internal/domain/repository"
)

// StockUseCase registra e exclui movimentações do livro de estoque e expõe
// as leituras de saldo/histórico.
//
// A saída (OUT) é validada contra o saldo projetado dentro de uma transação
// que bloqueia a linha do produto (SELECT FOR UPDATE): duas sessões
// concorrentes não conseguem sacar juntas mais do que o saldo.
type StockUseCase struct {
	txRunner TxRunner
	moveRepo repository.StockMoveRepository
	prodRepo repository.ProductRepository
}

// NewStockUseCase constrói o caso de uso.
func NewStockUseCase(txRunner TxRunner, moveRepo repository.StockMoveRepository, prodRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, moveRepo: moveRepo, prodRepo: prodRepo}
}

// RegisterMove valida e grava uma movimentação.
// Regras: produto obrigatório; IN/OUT exigem quantidade > 0; ADJUST exige
// quantidade diferente de zero (o sinal digitado é a correção);
// OUT com quantidade maior que o saldo atual é rejeitada com
// ErrInsufficientStock e nada é gravado.
func (uc *StockUseCase) RegisterMove(ctx context.Context, userID string, in dto.RegisterMoveRequest) (*dto.StockMoveResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidMoveType(in.MoveType) {
		return nil, domain.ErrInvalidInput
	}
	qty := in.Quantity.Decimal
	switch in.MoveType {
	case entity.MoveTypeIN, entity.MoveTypeOUT:
		if qty.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MoveTypeADJUST:
		if qty.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	}

	move := &entity.StockMove{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		MoveType:  in.MoveType,
		Quantity:  qty,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedAt: time.Now(),
		CreatedBy: userID,
	}

	err := uc.txRunner.Run(ctx, func(moveRepo repository.StockMoveRepository, productRepo repository.ProductRepository) error {
		// Bloqueia a linha do produto para serializar a validação de saída
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.MoveType == entity.MoveTypeOUT {
			balance, err := moveRepo.BalanceByProduct(in.ProductID)
			if err != nil {
				return err
			}
			if qty.GreaterThan(balance) {
				return domain.ErrInsufficientStock
			}
		}
		return moveRepo.Create(move)
	})
	if err != nil {
		return nil, err
	}
	return toMoveResponse(move), nil
}

// DeleteMove exclui uma movimentação. O saldo exibido é recalculado a partir
// das linhas restantes, nunca decrementado no lugar.
func (uc *StockUseCase) DeleteMove(ctx context.Context, id string) error {
	move, err := uc.moveRepo.GetByID(id)
	if err != nil {
		return err
	}
	if move == nil {
		return domain.ErrNotFound
	}
	return uc.moveRepo.Delete(id)
}

// ListBalances devolve a visão de saldo por produto.
func (uc *StockUseCase) ListBalances(ctx context.Context) ([]dto.ProductBalanceResponse, error) {
	rows, err := uc.moveRepo.ListBalances()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductBalanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductBalanceResponse{
			ProductID: r.ProductID,
			Name:      r.Name,
			Category:  r.Category,
			Balance:   r.Balance,
		})
	}
	return out, nil
}

// History lista as movimentações de um produto e projeta o saldo sobre elas.
func (uc *StockUseCase) History(ctx context.Context, productID string) (*dto.StockHistoryResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.prodRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	moves, err := uc.moveRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockHistoryResponse{
		ProductID: productID,
		Moves:     make([]dto.StockMoveResponse, 0, len(moves)),
	}
	flat := make([]entity.StockMove, 0, len(moves))
	for _, m := range moves {
		flat = append(flat, *m)
		resp.Moves = append(resp.Moves, *toMoveResponse(m))
	}
	resp.Balance = ledger.Balance(flat)
	return resp, nil
}

// ListRecent lista as últimas movimentações (mais recentes primeiro).
func (uc *StockUseCase) ListRecent(ctx context.Context, limit int) ([]dto.StockMoveResponse, error) {
	if limit <= 0 {
		limit = 40
	}
	if limit > 200 {
		limit = 200
	}
	moves, err := uc.moveRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMoveResponse, 0, len(moves))
	for _, m := range moves {
		out = append(out, *toMoveResponse(m))
	}
	return out, nil
}

func toMoveResponse(m *entity.StockMove) *dto.StockMoveResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMoveResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		MoveType:    m.MoveType,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	}
}
